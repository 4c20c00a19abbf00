package mail

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"gopkg.in/gomail.v2"
)

// dialer é satisfeito por *gomail.Dialer
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	dialer      dialer
	fromAddress string
	fromName    string
}

func NewSMTPMailer(cfg config.Mail) *SMTPMailer {
	return &SMTPMailer{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg notification.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if msg.To == "" {
		return errors.New("destinatário do e-mail não informado")
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.fromAddress, m.fromName)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/html", msg.HTMLBody)

	if err := m.dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "erro ao enviar e-mail via SMTP")
	}

	return nil
}
