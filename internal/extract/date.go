package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/meubolso/voz/internal/normalize"
)

var dayOfMonthPattern = regexp.MustCompile(`\bdia (\d{1,2})\b`)

var monthsOfYear = []struct {
	Name  string
	Month time.Month
}{
	{"janeiro", time.January},
	{"fevereiro", time.February},
	{"marco", time.March},
	{"abril", time.April},
	{"maio", time.May},
	{"junho", time.June},
	{"julho", time.July},
	{"agosto", time.August},
	{"setembro", time.September},
	{"outubro", time.October},
	{"novembro", time.November},
	{"dezembro", time.December},
}

// extractDueDate resolves the due date mentioned in the utterance, evaluated
// in priority order: relative keywords, end of month, explicit day of month,
// month name, then today as the fallback. The result is always a bare date at
// midnight.
func extractDueDate(norm string, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if strings.Contains(norm, "amanha") {
		return today.AddDate(0, 0, 1)
	}
	if strings.Contains(norm, "proxima semana") || strings.Contains(norm, "semana que vem") {
		return today.AddDate(0, 0, 7)
	}
	if strings.Contains(norm, "fim do mes") || strings.Contains(norm, "final do mes") {
		// Day zero of the next month is the last day of this one.
		return time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location())
	}

	// "dia N": the next calendar occurrence of day N that is not before
	// today, rolling into next month when N has already passed.
	if m := dayOfMonthPattern.FindStringSubmatch(norm); m != nil {
		day, _ := strconv.Atoi(m[1])
		if day >= 1 && day <= 31 {
			due := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())
			if due.Before(today) {
				due = time.Date(today.Year(), today.Month()+1, day, 0, 0, 0, 0, today.Location())
			}
			return due
		}
	}

	// Month name, with an optional standalone day number; rolls the year
	// forward when the mentioned date has already passed.
	for _, m := range monthsOfYear {
		if !strings.Contains(norm, m.Name) {
			continue
		}
		day := 1
		for _, tok := range normalize.Tokens(norm) {
			if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= 31 {
				day = n
				break
			}
		}
		due := time.Date(today.Year(), m.Month, day, 0, 0, 0, 0, today.Location())
		if due.Before(today) {
			due = due.AddDate(1, 0, 0)
		}
		return due
	}

	return today
}
