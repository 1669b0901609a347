package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/inklore/backend/config"
	"github.com/inklore/backend/internal/client"
	"github.com/inklore/backend/internal/domain"
	"github.com/inklore/backend/internal/domain/realtime"
	"github.com/inklore/backend/internal/entity"
	"github.com/inklore/backend/internal/model"
	"github.com/inklore/backend/internal/repository"
	"github.com/inklore/backend/pkg/authenticator"
	"github.com/inklore/backend/pkg/logger"
	xredis "github.com/inklore/backend/pkg/redis"
	"github.com/inklore/backend/pkg/xcontext"
	goredis "github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context

	userRepo         repository.UserRepository
	chatMemberRepo   repository.ChatMemberRepository
	notificationRepo repository.NotificationRepository

	notificationDomain domain.NotificationDomain
	wsDomain           domain.WsDomain

	registry    *realtime.SessionRegistry
	monitor     *realtime.LivenessMonitor
	coordinator *realtime.ReconnectCoordinator
	presence    *realtime.PresenceTracker
	chatRouter  *realtime.ChatRouter

	redisClient *goredis.Client
	emailCaller client.EmailCaller
}

func (s *srv) load(cliCtx *cli.Context) {
	s.ctx = context.Background()

	s.loadConfig(cliCtx.String("config"))
	s.loadLogger()
	s.loadDatabase()
	s.loadSnowFlake()
	s.loadRedis()
	s.loadRepos()
	s.loadEmailCaller()
	s.loadRealtime()
	s.loadDomains()
}

func (s *srv) loadConfig(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration.Std()))
}

func (s *srv) loadLogger() {
	level := xcontext.Configs(s.ctx).LogLevel
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() {
	cfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(mysql.Open(cfg.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadSnowFlake() {
	node, err := snowflake.NewNode(xcontext.Configs(s.ctx).SnowFlakeNode)
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithSnowFlake(s.ctx, node)
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx, xcontext.Configs(s.ctx).Redis)
	if err != nil {
		panic(err)
	}

	s.redisClient = client
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.chatMemberRepo = repository.NewChatMemberRepository()
	s.notificationRepo = repository.NewNotificationRepository()
}

func (s *srv) loadEmailCaller() {
	s.emailCaller = client.NewEmailCaller(xcontext.Configs(s.ctx).Mail)
}

func (s *srv) loadRealtime() {
	cfg := xcontext.Configs(s.ctx).Realtime

	s.registry = realtime.NewSessionRegistry()
	s.presence = realtime.NewPresenceTracker(s.redisClient, cfg.PresenceTTL.Std())
	s.coordinator = realtime.NewReconnectCoordinator(
		s.registry, cfg.ReconnectBaseDelay.Std(), s.presence.Offline)
	s.monitor = realtime.NewLivenessMonitor(
		s.registry, cfg.ProbeInterval.Std(), s.coordinator.OnDisconnected)
	s.chatRouter = realtime.NewChatRouter(s.chatMemberRepo, s.registry)

	s.registry.OnRegister(func(ctx context.Context, userID string) {
		s.coordinator.Reset(userID)
		s.presence.Online(ctx, userID)
	})
	s.registry.OnRelease(s.presence.Offline)
}

func (s *srv) loadDomains() {
	s.notificationDomain = domain.NewNotificationDomain(
		s.notificationRepo, s.userRepo, s.registry, s.emailCaller)
	s.wsDomain = domain.NewWsDomain(s.registry, s.chatRouter, s.coordinator)
}
