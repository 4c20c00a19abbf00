package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/log"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidID = errors.New("id inválido")

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeValidationError responde 422 com as mensagens agrupadas por campo
func writeValidationError(w http.ResponseWriter, verr utils.ValidationErrors) {
	apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Os dados fornecidos são inválidos.", verr)
}

func pathID(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}
