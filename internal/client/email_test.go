package client

import (
	"context"
	"net/smtp"
	"testing"

	"github.com/inklore/backend/config"
	"github.com/stretchr/testify/require"
)

func TestSendNotificationEmail(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	origin := sendMailHook
	sendMailHook = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}
	defer func() { sendMailHook = origin }()

	caller := NewEmailCaller(config.MailConfigs{
		Host: "smtp.example.com",
		Port: 587,
		User: "mailer",
		From: "noreply@example.com",
	})

	err := caller.SendNotificationEmail(
		context.Background(), "alice@example.com", "Someone liked your poem", "/poems/p1")
	require.NoError(t, err)

	require.Equal(t, "smtp.example.com:587", gotAddr)
	require.Equal(t, "noreply@example.com", gotFrom)
	require.Equal(t, []string{"alice@example.com"}, gotTo)
	require.Contains(t, string(gotMsg), "Someone liked your poem")
	require.Contains(t, string(gotMsg), "/poems/p1")
}
