package utils

import (
	"net/http"
	"strconv"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// ParsePagination lê page e per_page da query string; valores inválidos voltam ao padrão
func ParsePagination(r *http.Request) (page, perPage int) {
	page = queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	perPage = queryInt(r, "per_page", DefaultPerPage)
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
