package handler

import (
	"net/http"

	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

func ListSales(service selling.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage := utils.ParsePagination(r)

		list, err := service.ListSales(r.Context(), page, perPage)
		if err != nil {
			handleSellingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func CreateSale(service selling.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateSaleRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), req)
		if err != nil {
			handleSellingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

// ListSellerSales lista as vendas de um vendedor, da mais recente para a mais antiga
func ListSellerSales(service selling.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		page, perPage := utils.ParsePagination(r)

		list, err := service.ListSalesBySeller(r.Context(), id, page, perPage)
		if err != nil {
			handleSellingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}
