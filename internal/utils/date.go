package utils

import (
	"time"
)

// DateFormat format canonique des jours calendaires (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Today retourne le jour calendaire courant dans le fuseau donné
func Today(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(DateFormat)
}

// StartOfWeek retourne le lundi de la semaine courante (jour du reset du
// challenge hebdomadaire)
func StartOfWeek(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	offset := (int(now.Weekday()) + 6) % 7 // lundi = 0
	monday := now.AddDate(0, 0, -offset)
	return monday.Format(DateFormat)
}
