package domain

import "time"

// BRDateLayout é o formato de data usado nos e-mails (dd/mm/aaaa)
const BRDateLayout = "02/01/2006"

// CalendarDate descarta horário e fuso, mantendo apenas o dia do calendário
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay compara apenas ano, mês e dia
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Yesterday retorna o dia anterior a now no fuso informado
func Yesterday(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return CalendarDate(now.In(loc).AddDate(0, 0, -1))
}

func FormatBR(t time.Time) string {
	return t.Format(BRDateLayout)
}
