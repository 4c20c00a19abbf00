package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/log"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

func ListSellers(service selling.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage := utils.ParsePagination(r)

		list, err := service.ListSellers(r.Context(), page, perPage)
		if err != nil {
			handleSellingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func CreateSeller(service selling.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateSellerRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		seller, err := service.CreateSeller(r.Context(), req)
		if err != nil {
			handleSellingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, seller)
	}
}

func DeleteSeller(service selling.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		if err := service.DeleteSeller(r.Context(), id); err != nil {
			handleSellingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Vendedor removido com sucesso.",
		})
	}
}

// ResendCommissionEmail reenfileira o e-mail de comissão de um vendedor para a data informada
func ResendCommissionEmail(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		var req domain.ResendCommissionEmailRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := utils.ValidateStruct(req); err != nil {
			handleSellingError(w, r, err)
			return
		}

		report, err := reporter.ResendCommissionEmail(r.Context(), id, req.Date)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "E-mail de comissão reenviado com sucesso",
			"data":    report,
		})
	}
}

func handleSellingError(w http.ResponseWriter, r *http.Request, err error) {
	var verr utils.ValidationErrors
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.Is(err, selling.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSellerNotFound, "Vendedor não encontrado", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao processar vendedores ou vendas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar a requisição", nil)
	}
}

func handleReportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reporting.ErrFutureDate):
		writeValidationError(w, utils.ValidationErrors{"date": {reporting.ErrFutureDate.Error()}})
	case reporting.IsValidationError(err):
		writeValidationError(w, utils.ValidationErrors{"date": {reporting.ErrInvalidDate.Error()}})
	case errors.Is(err, reporting.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSellerNotFound, "Vendedor não encontrado", nil)
	case reporting.IsQueueError(err):
		log.ForContext(r.Context()).WithError(err).Error("Fila de notificações indisponível")
		apiErrors.WriteError(w, apiErrors.ErrQueueUnavailable, "Não foi possível agendar o e-mail, tente novamente", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar relatório de comissão")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório de comissão", nil)
	}
}
