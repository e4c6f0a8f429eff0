package extract

import (
	"strings"

	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/normalize"
)

// categoryScoreThreshold is the minimum score a candidate category needs to
// be accepted by any matching stage.
const categoryScoreThreshold = 50

// categoryTheme binds a spoken domain keyword to the category names it
// usually lives under. The slice is ordered: the first keyword contained in
// the utterance selects the theme.
type categoryTheme struct {
	Keyword string
	Themes  []string
}

var categoryThemes = []categoryTheme{
	{Keyword: "aluguel", Themes: []string{"moradia", "casa", "aluguel"}},
	{Keyword: "condominio", Themes: []string{"moradia", "casa", "condominio"}},
	{Keyword: "luz", Themes: []string{"contas", "energia", "moradia", "casa"}},
	{Keyword: "energia", Themes: []string{"contas", "energia", "moradia"}},
	{Keyword: "agua", Themes: []string{"contas", "agua", "moradia"}},
	{Keyword: "internet", Themes: []string{"contas", "internet", "assinaturas"}},
	{Keyword: "celular", Themes: []string{"contas", "telefone", "celular"}},
	{Keyword: "telefone", Themes: []string{"contas", "telefone"}},
	{Keyword: "supermercado", Themes: []string{"alimentacao", "mercado", "supermercado"}},
	{Keyword: "mercado", Themes: []string{"alimentacao", "mercado", "supermercado"}},
	{Keyword: "feira", Themes: []string{"alimentacao", "mercado"}},
	{Keyword: "restaurante", Themes: []string{"alimentacao", "restaurante", "lazer"}},
	{Keyword: "lanche", Themes: []string{"alimentacao", "lanches"}},
	{Keyword: "gasolina", Themes: []string{"transporte", "combustivel", "carro"}},
	{Keyword: "combustivel", Themes: []string{"transporte", "combustivel", "carro"}},
	{Keyword: "uber", Themes: []string{"transporte"}},
	{Keyword: "onibus", Themes: []string{"transporte"}},
	{Keyword: "farmacia", Themes: []string{"saude", "farmacia"}},
	{Keyword: "remedio", Themes: []string{"saude", "farmacia"}},
	{Keyword: "medico", Themes: []string{"saude"}},
	{Keyword: "consulta", Themes: []string{"saude"}},
	{Keyword: "academia", Themes: []string{"saude", "esporte", "lazer"}},
	{Keyword: "escola", Themes: []string{"educacao"}},
	{Keyword: "faculdade", Themes: []string{"educacao"}},
	{Keyword: "curso", Themes: []string{"educacao", "cursos"}},
	{Keyword: "netflix", Themes: []string{"assinaturas", "lazer", "entretenimento"}},
	{Keyword: "spotify", Themes: []string{"assinaturas", "lazer", "entretenimento"}},
	{Keyword: "streaming", Themes: []string{"assinaturas", "lazer", "entretenimento"}},
	{Keyword: "assinatura", Themes: []string{"assinaturas"}},
	{Keyword: "fatura", Themes: []string{"cartao", "contas"}},
	{Keyword: "cartao", Themes: []string{"cartao", "contas"}},
	{Keyword: "presente", Themes: []string{"presentes", "lazer"}},
	{Keyword: "viagem", Themes: []string{"viagens", "lazer"}},
	{Keyword: "passagem", Themes: []string{"viagens", "transporte"}},
}

// matchCategory finds the best category for the utterance. Three stages, each
// tried only when the previous one scored below the threshold: keyword themes
// (exact name 100, partial 80, +5 for expense categories), direct name
// containment (80), then single-word overlap for name words of four or more
// letters (60). Only expense-or-both categories are eligible. Returns the
// empty string when nothing scores above the threshold.
func matchCategory(norm string, categories []model.Category) string {
	eligible := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.AcceptsExpense() {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return ""
	}

	if id, score := matchByTheme(norm, eligible); score > categoryScoreThreshold {
		return id
	}
	if id, score := matchByName(norm, eligible); score > categoryScoreThreshold {
		return id
	}
	if id, score := matchByWordOverlap(norm, eligible); score > categoryScoreThreshold {
		return id
	}
	return ""
}

func matchByTheme(norm string, eligible []model.Category) (string, int) {
	var themes []string
	for _, ct := range categoryThemes {
		if strings.Contains(norm, ct.Keyword) {
			themes = ct.Themes
			break
		}
	}
	if themes == nil {
		return "", 0
	}

	bestID, bestScore := "", 0
	for _, c := range eligible {
		name := normalize.Text(c.Name)
		score := 0
		for _, theme := range themes {
			switch {
			case name == theme:
				score = 100
			case strings.Contains(name, theme) || strings.Contains(theme, name):
				if score < 80 {
					score = 80
				}
			}
		}
		if score == 0 {
			continue
		}
		score += 5 // Expense-or-both bonus; income types were filtered out.
		if score > bestScore {
			bestID, bestScore = c.ID, score
		}
	}
	return bestID, bestScore
}

func matchByName(norm string, eligible []model.Category) (string, int) {
	for _, c := range eligible {
		if name := normalize.Text(c.Name); name != "" && strings.Contains(norm, name) {
			return c.ID, 80
		}
	}
	return "", 0
}

func matchByWordOverlap(norm string, eligible []model.Category) (string, int) {
	for _, c := range eligible {
		for _, word := range strings.Fields(normalize.Text(c.Name)) {
			if len(word) >= 4 && strings.Contains(norm, word) {
				return c.ID, 60
			}
		}
	}
	return "", 0
}
