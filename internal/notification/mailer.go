package notification

import "context"

// Message é um e-mail já renderizado, pronto para o transporte
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
