package rabbitmq

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind = "topic"
	dialTimeout  = 10 * time.Second
)

// channel é o subconjunto de *amqp.Channel usado na publicação
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Close() error
}

type exchangeDeclarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")

	parsed, err := url.Parse(clean)
	if err != nil {
		return "", errors.Wrap(err, "URL do RabbitMQ inválida")
	}
	if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
		return "", errors.Errorf("esquema AMQP inválido: %q (use amqp:// ou amqps://)", parsed.Scheme)
	}

	return clean, nil
}

func dial(rawURL string) (*amqp.Connection, *amqp.Channel, error) {
	cleanURL, err := sanitizeURL(rawURL)
	if err != nil {
		return nil, nil, err
	}

	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao conectar no RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errors.Wrap(err, "erro ao abrir canal no RabbitMQ")
	}

	return conn, ch, nil
}

func declareExchange(ch exchangeDeclarer, exchange string) error {
	return ch.ExchangeDeclare(
		exchange,     // name
		exchangeKind, // type
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,          // args
	)
}

// deadLetterNames devolve o exchange e a fila que recebem as mensagens rejeitadas sem requeue
func deadLetterNames(exchange, queue string) (string, string) {
	return exchange + ".dlx", queue + ".dead"
}

func deadLetterArgs(exchange string) amqp.Table {
	dlx, _ := deadLetterNames(exchange, "")
	return amqp.Table{"x-dead-letter-exchange": dlx}
}

func declareDeadLetter(ch *amqp.Channel, exchange, queue string) error {
	dlx, dlq := deadLetterNames(exchange, queue)

	if err := ch.ExchangeDeclare(dlx, "fanout", true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "erro ao declarar exchange %s", dlx)
	}
	if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "erro ao declarar fila %s", dlq)
	}
	if err := ch.QueueBind(dlq, "", dlx, false, nil); err != nil {
		return errors.Wrapf(err, "erro ao vincular fila %s", dlq)
	}

	return nil
}
