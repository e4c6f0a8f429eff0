package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/meubolso/voz/internal/normalize"
)

// fallbackDescription is used when nothing meaningful survives the cleanup.
const fallbackDescription = "Compromisso"

// commitmentPrefixes are trigger phrases stripped from the start of the
// utterance before the description is assembled. Longer phrases come first so
// "criar compromisso" wins over "criar".
var commitmentPrefixes = []string{
	"criar compromisso de",
	"criar compromisso",
	"novo compromisso de",
	"novo compromisso",
	"adicionar compromisso",
	"agendar pagamento de",
	"agendar conta de",
	"agendar",
	"anotar conta de",
	"anotar conta",
	"anotar",
	"me lembra de pagar",
	"lembrete de pagamento",
	"lembrete de",
	"criar conta",
	"pagar",
}

// noiseWords never belong in a description: articles, prepositions, date and
// confirmation vocabulary, currency words and month names.
var noiseWords = map[string]bool{
	"o": true, "a": true, "os": true, "as": true, "um": true, "uma": true,
	"de": true, "do": true, "da": true, "dos": true, "das": true,
	"no": true, "na": true, "nos": true, "nas": true, "em": true,
	"para": true, "pra": true, "pro": true, "com": true, "e": true, "que": true,
	"meu": true, "minha": true, "ate": true, "por": true, "favor": true,
	"sim": true, "ok": true, "certo": true, "isso": true,
	"dia": true, "hoje": true, "ontem": true, "amanha": true, "semana": true, "mes": true,
	"ano": true, "proxima": true, "proximo": true, "fim": true, "final": true,
	"vence": true, "vencimento": true, "vencendo": true,
	"real": true, "reais": true, "conto": true, "contos": true, "pila": true,
	"r$": true,
	"janeiro": true, "fevereiro": true, "marco": true, "abril": true,
	"maio": true, "junho": true, "julho": true, "agosto": true,
	"setembro": true, "outubro": true, "novembro": true, "dezembro": true,
}

// extractDescription distills the free text into a short label. Pipeline:
// strip one leading trigger phrase, drop numeric and noise tokens (a "dia"
// also drops its paired number), then capitalize. Falls back to the first
// four non-numeric words of the raw text, then to a fixed literal.
func extractDescription(raw string) string {
	return buildDescription(raw, commitmentPrefixes, fallbackDescription)
}

func buildDescription(raw string, prefixes []string, fallback string) string {
	norm := normalize.Text(raw)
	for _, prefix := range prefixes {
		if strings.HasPrefix(norm, prefix+" ") {
			norm = strings.TrimPrefix(norm, prefix+" ")
			break
		}
	}

	tokens := normalize.Tokens(norm)
	kept := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "dia" {
			// Skip the paired day number too.
			if i+1 < len(tokens) && normalize.IsNumeric(tokens[i+1]) {
				i++
			}
			continue
		}
		if noiseWords[tok] || normalize.IsNumeric(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	if len(kept) == 0 {
		kept = firstWords(raw, 4)
	}
	if len(kept) == 0 {
		return fallback
	}
	return capitalize(strings.Join(kept, " "))
}

// firstWords returns up to n non-numeric words of the raw text, lowercased.
func firstWords(raw string, n int) []string {
	words := make([]string, 0, n)
	for _, tok := range normalize.Tokens(raw) {
		if normalize.IsNumeric(tok) {
			continue
		}
		words = append(words, tok)
		if len(words) == n {
			break
		}
	}
	return words
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
