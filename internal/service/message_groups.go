package service

import (
	"fmt"
	"time"

	"jasaku/internal/domain"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatMessageDate devuelve la etiqueta de día para un timestamp: "Hari ini",
// "Kemarin" o la fecha larga en indonesio. Los timestamps se almacenan en UTC
// y se convierten a la zona de visualización configurada.
func FormatMessageDate(ts, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	day := ts.In(loc)
	today := now.In(loc)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case sameCalendarDay(day, today):
		return "Hari ini"
	case sameCalendarDay(day, yesterday):
		return "Kemarin"
	default:
		return fmt.Sprintf("%d %s %d", day.Day(), indonesianMonths[day.Month()-1], day.Year())
	}
}

// FormatClock devuelve la hora HH:MM en la zona de visualización.
func FormatClock(ts time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return ts.In(loc).Format("15:04")
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// GroupByDate recorre una lista de mensajes ya ordenada ascendente por
// timestamp y abre un grupo nuevo cada vez que cambia la etiqueta de día.
// No reordena la entrada: el repositorio es responsable del orden total.
func GroupByDate(messages []domain.Message, now time.Time, loc *time.Location) []domain.MessageGroup {
	groups := []domain.MessageGroup{}
	currentLabel := ""
	var current []domain.Message

	for _, msg := range messages {
		label := FormatMessageDate(msg.Timestamp, now, loc)
		if label != currentLabel {
			if len(current) > 0 {
				groups = append(groups, domain.MessageGroup{DateLabel: currentLabel, Messages: current})
			}
			currentLabel = label
			current = []domain.Message{msg}
			continue
		}
		current = append(current, msg)
	}
	if len(current) > 0 {
		groups = append(groups, domain.MessageGroup{DateLabel: currentLabel, Messages: current})
	}

	return groups
}
