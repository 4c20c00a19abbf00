package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSMTPMailer_Send(t *testing.T) {
	msg := notification.Message{
		To:       "maria@example.com",
		Subject:  "Relatório Diário de Vendas - 15/03/2024",
		HTMLBody: "<p>Olá</p>",
	}

	tests := []struct {
		name     string
		dialer   *fakeDialer
		msg      notification.Message
		validate func(t *testing.T, d *fakeDialer, err error)
	}{
		{
			name:   "Monta cabeçalhos e envia",
			dialer: &fakeDialer{},
			msg:    msg,
			validate: func(t *testing.T, d *fakeDialer, err error) {
				require.NoError(t, err)
				require.Len(t, d.sent, 1)
				assert.Equal(t, []string{"maria@example.com"}, d.sent[0].GetHeader("To"))
				assert.Equal(t, []string{msg.Subject}, d.sent[0].GetHeader("Subject"))
				assert.Len(t, d.sent[0].GetHeader("From"), 1)
			},
		},
		{
			name:   "Destinatário vazio não chama o SMTP",
			dialer: &fakeDialer{},
			msg:    notification.Message{Subject: "x"},
			validate: func(t *testing.T, d *fakeDialer, err error) {
				assert.Error(t, err)
				assert.Empty(t, d.sent)
			},
		},
		{
			name:   "Erro do SMTP é propagado",
			dialer: &fakeDialer{err: errors.New("connection refused")},
			msg:    msg,
			validate: func(t *testing.T, d *fakeDialer, err error) {
				assert.ErrorContains(t, err, "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &SMTPMailer{dialer: tt.dialer, fromAddress: "noreply@sales.local", fromName: "Sales"}
			err := mailer.Send(context.Background(), tt.msg)
			tt.validate(t, tt.dialer, err)
		})
	}
}
