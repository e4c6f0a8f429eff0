package extract

import "github.com/meubolso/voz/internal/normalize"

// amountCeiling guards the numeric scan against absurd values. Values at or
// above it are ignored so a stray long digit run never becomes the amount.
const amountCeiling = 100000

// writtenNumbers maps spelled-out pt-BR numbers to values. The table is
// scanned in order and the first token present in the utterance wins.
var writtenNumbers = []struct {
	Word  string
	Value float64
}{
	{"mil", 1000},
	{"quinhentos", 500},
	{"quatrocentos", 400},
	{"trezentos", 300},
	{"duzentos", 200},
	{"cem", 100},
	{"noventa", 90},
	{"oitenta", 80},
	{"setenta", 70},
	{"sessenta", 60},
	{"cinquenta", 50},
	{"quarenta", 40},
	{"trinta", 30},
	{"vinte", 20},
	{"quinze", 15},
	{"dez", 10},
	{"cinco", 5},
}

// extractAmount returns the monetary value of the utterance: the largest
// numeric below the sanity ceiling, else the first written-number hit, else 0.
func extractAmount(norm string) float64 {
	var best float64
	for _, v := range normalize.Numbers(norm) {
		if v < amountCeiling && v > best {
			best = v
		}
	}
	if best > 0 {
		return best
	}

	tokens := normalize.Tokens(norm)
	present := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		present[tok] = true
	}
	for _, wn := range writtenNumbers {
		if present[wn.Word] {
			return wn.Value
		}
	}
	return 0
}
