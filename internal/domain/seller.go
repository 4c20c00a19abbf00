package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCommissionRate é a taxa aplicada quando o vendedor é cadastrado sem taxa explícita
var DefaultCommissionRate = decimal.RequireFromString("8.5")

type Seller struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"-"`
}

// IsDeleted indica se o vendedor foi removido logicamente
func (s *Seller) IsDeleted() bool {
	return s.DeletedAt != nil
}

func (s Seller) MarshalJSON() ([]byte, error) {
	type Alias Seller
	return json.Marshal(struct {
		Alias
		CommissionRate string `json:"commission_rate"`
	}{Alias(s), formatMoney(s.CommissionRate)})
}

type CreateSellerRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

type SellerListResponse struct {
	Data       []*Seller  `json:"data"`
	Pagination Pagination `json:"meta"`
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// NewPagination monta os metadados de paginação a partir do total de registros
func NewPagination(page, perPage int, total int64) Pagination {
	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
