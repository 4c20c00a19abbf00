package notification

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	sellerReportTemplate = "seller_report.html"
	adminReportTemplate  = "admin_report.html"
)

type Handler struct {
	mailer    Mailer
	templates *template.Template
	appName   string
	now       func() time.Time
}

func NewHandler(mailer Mailer, appName string) (*Handler, error) {
	tmpl, err := template.New("notification").
		Funcs(template.FuncMap{
			"brl":        FormatBRL,
			"salesLabel": salesLabel,
			"rank":       func(i int) int { return i + 1 },
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar templates de e-mail")
	}

	return &Handler{
		mailer:    mailer,
		templates: tmpl,
		appName:   appName,
		now:       time.Now,
	}, nil
}

// Handle renderiza o template do job e envia o e-mail ao destinatário
func (h *Handler) Handle(ctx context.Context, job Job) error {
	msg, err := h.Render(job)
	if err != nil {
		return err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_kind": string(job.Kind()),
		"to":       msg.To,
	})

	if err := h.mailer.Send(ctx, msg); err != nil {
		logger.WithError(err).Error("Erro ao enviar e-mail do relatório")
		return errors.Wrapf(err, "erro ao enviar e-mail para %s", msg.To)
	}

	logger.Info("E-mail do relatório enviado")
	return nil
}

func (h *Handler) Render(job Job) (Message, error) {
	var name string
	var data any

	switch j := job.(type) {
	case SellerReportJob:
		name = sellerReportTemplate
		data = struct {
			SellerReportJob
			Year    int
			AppName string
		}{j, h.now().Year(), h.appName}
	case AdminReportJob:
		name = adminReportTemplate
		data = struct {
			AdminReportJob
			Year    int
			AppName string
		}{j, h.now().Year(), h.appName}
	default:
		return Message{}, errors.Wrapf(ErrUnknownJobKind, "kind=%s", job.Kind())
	}

	var body bytes.Buffer
	if err := h.templates.ExecuteTemplate(&body, name, data); err != nil {
		return Message{}, errors.Wrapf(err, "erro ao renderizar template %s", name)
	}

	return Message{
		To:       job.Recipient(),
		Subject:  job.Subject(),
		HTMLBody: body.String(),
	}, nil
}
