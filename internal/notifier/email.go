// Package notifier delivers transactional email. Delivery is best-effort:
// callers log failures and never let them affect committed state.
package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type smtpNotifier struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPNotifier(config utils.EmailConfig, log *zap.Logger) Notifier {
	return &smtpNotifier{
		config: config,
		log:    log.With(zap.String("notifier", "smtp")),
	}
}

func (n *smtpNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		n.config.From, to, subject, body,
	))

	done := make(chan error, 1)
	go func() {
		done <- n.send(addr, to, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			n.log.Warn("Email delivery failed",
				zap.Error(err),
				zap.String("to", to),
				zap.String("subject", subject),
			)
			return fmt.Errorf("send email to %s: %w", to, err)
		}
		n.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *smtpNotifier) send(addr, to string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: n.config.Host}); err != nil {
			return err
		}
	}

	if n.config.User != "" {
		auth := smtp.PlainAuth("", n.config.User, n.config.Password, n.config.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(n.config.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
