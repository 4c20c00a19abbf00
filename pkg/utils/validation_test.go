package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleInput struct {
	SellerID int64  `json:"seller_id" validate:"required,gt=0"`
	Note     string `json:"note" validate:"required,max=10"`
	SaleDate string `json:"sale_date" validate:"required,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name     string
		input    saleInput
		validate func(t *testing.T, err error)
	}{
		{
			name:  "Entrada válida",
			input: saleInput{SellerID: 1, Note: "balcão", SaleDate: "2024-03-15"},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "Texto acima do limite é rejeitado",
			input: saleInput{SellerID: 1, Note: "venda de balcão", SaleDate: "2024-03-15"},
			validate: func(t *testing.T, err error) {
				var verr ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"O campo note não pode ter mais de 10 caracteres."}, verr["note"])
				assert.NotContains(t, verr, "sale_date")
			},
		},
		{
			name:  "Campos ausentes usam o nome do JSON",
			input: saleInput{},
			validate: func(t *testing.T, err error) {
				var verr ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"O campo seller_id é obrigatório."}, verr["seller_id"])
				assert.Len(t, verr, 3)
			},
		},
		{
			name:  "Data em formato brasileiro é rejeitada",
			input: saleInput{SellerID: 1, Note: "balcão", SaleDate: "15/03/2024"},
			validate: func(t *testing.T, err error) {
				var verr ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"O campo sale_date deve estar no formato AAAA-MM-DD."}, verr["sale_date"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ValidateStruct(tt.input))
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{name: "Sem parâmetros", query: "", wantPage: 1, wantPerPage: DefaultPerPage},
		{name: "Valores informados", query: "?page=3&per_page=20", wantPage: 3, wantPerPage: 20},
		{name: "Limite máximo por página", query: "?per_page=1000", wantPage: 1, wantPerPage: MaxPerPage},
		{name: "Valores inválidos", query: "?page=abc&per_page=-1", wantPage: 1, wantPerPage: DefaultPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/v1/sellers"+tt.query, nil)
			page, perPage := ParsePagination(r)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}
