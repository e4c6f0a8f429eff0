package query

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer localizes numeric output: thousands separated by dots, decimal
// comma, as in "R$ 1.234,56".
var printer = message.NewPrinter(language.BrazilianPortuguese)

func formatBRL(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

func formatDay(t time.Time) string {
	return t.Format("02/01")
}

// pluralize picks the word form matching the count.
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func monthName(m time.Month) string {
	return monthNames[int(m)-1]
}
