package main

import (
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func (s *srv) app() *cli.App {
	return &cli.App{
		Name:  "inklore",
		Usage: "real-time delivery backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the toml configuration file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "api",
				Usage: "start the notification api server",
				Action: func(cliCtx *cli.Context) error {
					s.load(cliCtx)
					return s.runApi()
				},
			},
			{
				Name:  "realtime",
				Usage: "start the websocket delivery server",
				Action: func(cliCtx *cli.Context) error {
					s.load(cliCtx)
					return s.runRealtime(s.ctx)
				},
			},
			{
				Name:  "serve",
				Usage: "start the api and websocket servers in one process",
				Action: func(cliCtx *cli.Context) error {
					s.load(cliCtx)

					g, ctx := errgroup.WithContext(s.ctx)
					g.Go(s.runApi)
					g.Go(func() error { return s.runRealtime(ctx) })
					return g.Wait()
				},
			},
		},
	}
}
