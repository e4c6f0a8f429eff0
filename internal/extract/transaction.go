package extract

import (
	"strings"
	"time"

	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/normalize"
)

var incomeTriggers = []string{"recebi", "ganhei", "entrou", "salario", "recebimento", "receita"}

var transactionPrefixes = []string{
	"registrar despesa de",
	"registrar gasto de",
	"registrar despesa",
	"registrar gasto",
	"nova despesa de",
	"nova despesa",
	"novo gasto",
	"nova receita de",
	"nova receita",
	"gastei com",
	"gastei",
	"paguei",
	"comprei",
	"recebi de",
	"recebi",
	"ganhei",
	"lancar",
}

var paymentMethodHints = []string{"pix", "credito", "debito", "dinheiro", "boleto", "cartao"}

// TransactionParser is the same family of parser as the commitment extractor,
// tuned for expense and income utterances. It also best-effort matches the
// payment method and supplier against the snapshot lists.
type TransactionParser struct{}

// NewTransactionParser creates the default pt-BR transaction parser.
func NewTransactionParser() *TransactionParser {
	return &TransactionParser{}
}

// Parse builds a fully populated transaction draft. Kind defaults to expense
// unless an income trigger is present; date defaults to today ("ontem" moves
// it one day back).
func (p *TransactionParser) Parse(text string, snap *model.Snapshot, now time.Time) model.TransactionDraft {
	norm := normalize.Text(text)

	kind := model.KindExpense
	if normalize.ContainsAny(norm, incomeTriggers) {
		kind = model.KindIncome
	}

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if strings.Contains(norm, "ontem") {
		date = date.AddDate(0, 0, -1)
	}

	draft := model.TransactionDraft{
		Description: buildDescription(text, transactionPrefixes, "Lançamento"),
		Amount:      extractAmount(norm),
		Kind:        kind,
		Date:        date,
	}
	if snap != nil {
		draft.CategoryID = p.matchCategoryForKind(norm, snap.Categories, kind)
		draft.PaymentMethodID = matchPaymentMethod(norm, snap.PaymentMethods)
		draft.SupplierID = matchSupplier(norm, snap.Suppliers)
	}
	return draft
}

// matchCategoryForKind reuses the commitment category matcher for expenses
// and does a direct name pass for income, where the theme table does not
// apply.
func (p *TransactionParser) matchCategoryForKind(norm string, categories []model.Category, kind model.TransactionKind) string {
	if kind == model.KindExpense {
		return matchCategory(norm, categories)
	}
	for _, c := range categories {
		if !c.AcceptsIncome() {
			continue
		}
		if name := normalize.Text(c.Name); name != "" && strings.Contains(norm, name) {
			return c.ID
		}
	}
	return ""
}

func matchPaymentMethod(norm string, methods []model.PaymentMethod) string {
	for _, hint := range paymentMethodHints {
		if !strings.Contains(norm, hint) {
			continue
		}
		for _, m := range methods {
			if strings.Contains(normalize.Text(m.Name), hint) {
				return m.ID
			}
		}
	}
	for _, m := range methods {
		if name := normalize.Text(m.Name); name != "" && strings.Contains(norm, name) {
			return m.ID
		}
	}
	return ""
}

func matchSupplier(norm string, suppliers []model.Supplier) string {
	for _, s := range suppliers {
		if name := normalize.Text(s.Name); name != "" && strings.Contains(norm, name) {
			return s.ID
		}
	}
	return ""
}
