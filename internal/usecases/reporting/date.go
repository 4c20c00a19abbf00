package reporting

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-commission-api/internal/domain"
)

// ParseReportDate valida uma data AAAA-MM-DD que não pode estar no futuro do fuso informado
func ParseReportDate(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, NewReportError(ErrInvalidDate, "data não informada")
	}

	date, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return time.Time{}, NewReportError(ErrInvalidDate, raw)
	}

	if loc == nil {
		loc = time.UTC
	}

	today := domain.CalendarDate(now.In(loc))
	if date.After(today) {
		return time.Time{}, NewReportError(ErrFutureDate, raw)
	}

	return date, nil
}
