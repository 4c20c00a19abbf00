package notification

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnknownJobKind = errors.New("tipo de job desconhecido")

// Envelope é o formato de fio dos jobs publicados na fila
type Envelope struct {
	ID         string              `json:"id"`
	Kind       JobKind             `json:"kind"`
	Payload    jsoniter.RawMessage `json:"payload"`
	EnqueuedAt time.Time           `json:"enqueued_at"`
}

func NewEnvelope(job Job) (*Envelope, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do job")
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao serializar job %s", job.Kind())
	}

	return &Envelope{
		ID:         id,
		Kind:       job.Kind(),
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	}, nil
}

func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEnvelope(body []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "envelope inválido")
	}
	return &envelope, nil
}

// Decode reconstrói o job concreto a partir do tipo informado no envelope
func (e *Envelope) Decode() (Job, error) {
	switch e.Kind {
	case KindSellerReport:
		var job SellerReportJob
		if err := json.Unmarshal(e.Payload, &job); err != nil {
			return nil, errors.Wrapf(err, "payload inválido para o job %s", e.ID)
		}
		return job, nil
	case KindAdminReport:
		var job AdminReportJob
		if err := json.Unmarshal(e.Payload, &job); err != nil {
			return nil, errors.Wrapf(err, "payload inválido para o job %s", e.ID)
		}
		return job, nil
	default:
		return nil, errors.Wrapf(ErrUnknownJobKind, "kind=%s", e.Kind)
	}
}
