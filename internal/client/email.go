package client

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/inklore/backend/config"
)

// sendMailHook allows tests to override SMTP sending behavior.
var sendMailHook = smtp.SendMail

// EmailCaller delivers notification emails. Implementations are best-effort
// collaborators; callers log failures instead of propagating them.
type EmailCaller interface {
	SendNotificationEmail(ctx context.Context, address, content, link string) error
}

type smtpEmailCaller struct {
	cfg config.MailConfigs
}

func NewEmailCaller(cfg config.MailConfigs) *smtpEmailCaller {
	return &smtpEmailCaller{cfg: cfg}
}

func (c *smtpEmailCaller) SendNotificationEmail(_ context.Context, address, content, link string) error {
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Password, c.cfg.Host)

	body := content
	if link != "" {
		body += "\r\n\r\n" + link
	}

	msg := fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: You have a new notification\r\n\r\n%s",
		address, c.cfg.From, body,
	)

	return sendMailHook(addr, auth, c.cfg.From, []string{address}, []byte(msg))
}
