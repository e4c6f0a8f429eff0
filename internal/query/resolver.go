// Package query resolves canned analytical questions against a financial
// snapshot, producing complete pt-BR sentences ready for speech synthesis.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/meubolso/voz/internal/model"
)

// DefaultAlertPercent is the budget usage percentage that flags a category as
// "em alerta" when no value is configured.
const DefaultAlertPercent = 80.0

// budgetReportLimit caps how many categories a budget-status answer mentions.
const budgetReportLimit = 3

// Resolver answers query keys from a snapshot. Resolve is a pure function of
// its three inputs: time is taken once from the supplied now so every date
// window in one answer shares the same boundary.
type Resolver struct {
	alertPercent float64
}

// NewResolver creates a resolver. alertPercent <= 0 selects the default.
func NewResolver(alertPercent float64) *Resolver {
	if alertPercent <= 0 {
		alertPercent = DefaultAlertPercent
	}
	return &Resolver{alertPercent: alertPercent}
}

// Keys returns every query key the resolver can answer, in a stable order.
func Keys() []model.QueryKey {
	return []model.QueryKey{
		model.QueryGreeting,
		model.QueryBalanceMonth,
		model.QuerySpentToday,
		model.QuerySpentWeek,
		model.QuerySpentMonth,
		model.QueryIncomeMonth,
		model.QueryCommitmentsToday,
		model.QueryCommitmentsWeek,
		model.QueryCommitmentsMonth,
		model.QueryCommitmentsOverdue,
		model.QueryNextCommitment,
		model.QueryTopCategory,
		model.QueryBiggestExpense,
		model.QueryLastTransaction,
		model.QueryTransactionCount,
		model.QuerySavingsProgress,
		model.QueryBudgetStatus,
		model.QueryCompareMonth,
	}
}

// Resolve answers the given key. Every key has an explicit empty-result
// sentence: the result is never the empty string and no aggregate divides by
// zero.
func (r *Resolver) Resolve(key model.QueryKey, snap *model.Snapshot, now time.Time) string {
	if snap == nil {
		snap = &model.Snapshot{}
	}

	switch key {
	case model.QueryGreeting:
		return greeting(now)
	case model.QueryBalanceMonth:
		return r.balanceMonth(snap, now)
	case model.QuerySpentToday:
		return r.spentIn(snap, now, "hoje", func(t time.Time) bool { return sameDay(t, now) })
	case model.QuerySpentWeek:
		monday, sunday := weekBounds(now)
		return r.spentIn(snap, now, "nesta semana", func(t time.Time) bool { return inWeek(t, monday, sunday) })
	case model.QuerySpentMonth:
		return r.spentIn(snap, now, "neste mês", func(t time.Time) bool { return sameMonth(t, now) })
	case model.QueryIncomeMonth:
		return r.incomeMonth(snap, now)
	case model.QueryCommitmentsToday:
		return r.commitmentsIn(snap, "para hoje", func(c model.Commitment) bool {
			return !c.Paid && sameDay(c.DueDate, now)
		})
	case model.QueryCommitmentsWeek:
		monday, sunday := weekBounds(now)
		return r.commitmentsIn(snap, "nesta semana", func(c model.Commitment) bool {
			return !c.Paid && inWeek(c.DueDate, monday, sunday)
		})
	case model.QueryCommitmentsMonth:
		return r.commitmentsIn(snap, "neste mês", func(c model.Commitment) bool {
			return !c.Paid && sameMonth(c.DueDate, now)
		})
	case model.QueryCommitmentsOverdue:
		return r.commitmentsOverdue(snap, now)
	case model.QueryNextCommitment:
		return r.nextCommitment(snap, now)
	case model.QueryTopCategory:
		return r.topCategory(snap, now)
	case model.QueryBiggestExpense:
		return r.biggestExpense(snap, now)
	case model.QueryLastTransaction:
		return r.lastTransaction(snap)
	case model.QueryTransactionCount:
		return r.transactionCount(snap, now)
	case model.QuerySavingsProgress:
		return r.savingsProgress(snap)
	case model.QueryBudgetStatus:
		return r.budgetStatus(snap, now)
	case model.QueryCompareMonth:
		return r.compareMonth(snap, now)
	default:
		return "Desculpe, não entendi a pergunta. Diga \"ajuda\" para ver o que eu sei responder."
	}
}

func greeting(now time.Time) string {
	var salutation string
	switch hour := now.Hour(); {
	case hour < 12:
		salutation = "Bom dia!"
	case hour < 18:
		salutation = "Boa tarde!"
	default:
		salutation = "Boa noite!"
	}
	return salutation + " Posso registrar gastos, agendar contas e responder perguntas sobre suas finanças."
}

func (r *Resolver) balanceMonth(snap *model.Snapshot, now time.Time) string {
	var income, expenses float64
	count := 0
	for _, t := range snap.Transactions {
		if !sameMonth(t.Date, now) {
			continue
		}
		count++
		if t.Kind == model.KindIncome {
			income += t.Amount
		} else {
			expenses += t.Amount
		}
	}
	if count == 0 {
		return "Você ainda não tem lançamentos neste mês."
	}
	return fmt.Sprintf("Seu saldo de %s é de %s: %s de receitas e %s de despesas.",
		monthName(now.Month()), formatBRL(income-expenses), formatBRL(income), formatBRL(expenses))
}

func (r *Resolver) spentIn(snap *model.Snapshot, _ time.Time, window string, match func(time.Time) bool) string {
	var total float64
	count := 0
	for _, t := range snap.Transactions {
		if t.Kind != model.KindExpense || !match(t.Date) {
			continue
		}
		total += t.Amount
		count++
	}
	if count == 0 {
		return fmt.Sprintf("Você ainda não registrou gastos %s.", window)
	}
	return fmt.Sprintf("Você gastou %s %s, em %d %s.",
		formatBRL(total), window, count, pluralize(count, "lançamento", "lançamentos"))
}

func (r *Resolver) incomeMonth(snap *model.Snapshot, now time.Time) string {
	var total float64
	count := 0
	for _, t := range snap.Transactions {
		if t.Kind != model.KindIncome || !sameMonth(t.Date, now) {
			continue
		}
		total += t.Amount
		count++
	}
	if count == 0 {
		return "Você ainda não registrou receitas neste mês."
	}
	return fmt.Sprintf("Você recebeu %s neste mês, em %d %s.",
		formatBRL(total), count, pluralize(count, "entrada", "entradas"))
}

func (r *Resolver) commitmentsIn(snap *model.Snapshot, window string, match func(model.Commitment) bool) string {
	var total float64
	names := make([]string, 0, 3)
	count := 0
	for _, c := range snap.Commitments {
		if !match(c) {
			continue
		}
		count++
		total += c.Amount
		if len(names) < 3 {
			names = append(names, c.Description)
		}
	}
	if count == 0 {
		return fmt.Sprintf("Você não tem compromissos %s.", window)
	}
	return fmt.Sprintf("Você tem %d %s %s, somando %s: %s.",
		count, pluralize(count, "compromisso", "compromissos"), window,
		formatBRL(total), strings.Join(names, ", "))
}

func (r *Resolver) commitmentsOverdue(snap *model.Snapshot, now time.Time) string {
	today := dateOnly(now)
	var total float64
	count := 0
	for _, c := range snap.Commitments {
		if c.Paid || !dateOnly(c.DueDate).Before(today) {
			continue
		}
		count++
		total += c.Amount
	}
	if count == 0 {
		return "Você não tem contas em atraso. Tudo em dia!"
	}
	return fmt.Sprintf("Atenção: você tem %d %s em atraso, somando %s.",
		count, pluralize(count, "conta", "contas"), formatBRL(total))
}

func (r *Resolver) nextCommitment(snap *model.Snapshot, now time.Time) string {
	today := dateOnly(now)
	var next *model.Commitment
	for i, c := range snap.Commitments {
		if c.Paid || dateOnly(c.DueDate).Before(today) {
			continue
		}
		if next == nil || c.DueDate.Before(next.DueDate) {
			next = &snap.Commitments[i]
		}
	}
	if next == nil {
		return "Você não tem contas futuras agendadas."
	}
	return fmt.Sprintf("Sua próxima conta é %s, de %s, no dia %s.",
		next.Description, formatBRL(next.Amount), formatDay(next.DueDate))
}

func (r *Resolver) topCategory(snap *model.Snapshot, now time.Time) string {
	totals := make(map[string]float64)
	var overall float64
	for _, t := range snap.Transactions {
		if t.Kind != model.KindExpense || !sameMonth(t.Date, now) {
			continue
		}
		totals[t.CategoryID] += t.Amount
		overall += t.Amount
	}
	if overall <= 0 {
		return "Você ainda não tem gastos neste mês para comparar categorias."
	}

	var topID string
	var topAmount float64
	for id, amount := range totals {
		if amount > topAmount || (amount == topAmount && id < topID) {
			topID, topAmount = id, amount
		}
	}
	name := "Sem categoria"
	if cat, ok := snap.CategoryByID(topID); ok {
		name = cat.Name
	}
	return fmt.Sprintf("Sua maior categoria neste mês é %s, com %s (%s dos gastos).",
		name, formatBRL(topAmount), formatPercent(topAmount/overall*100))
}

func (r *Resolver) biggestExpense(snap *model.Snapshot, now time.Time) string {
	var biggest *model.Transaction
	for i, t := range snap.Transactions {
		if t.Kind != model.KindExpense || !sameMonth(t.Date, now) {
			continue
		}
		if biggest == nil || t.Amount > biggest.Amount {
			biggest = &snap.Transactions[i]
		}
	}
	if biggest == nil {
		return "Você ainda não tem gastos registrados neste mês."
	}
	return fmt.Sprintf("Seu maior gasto neste mês foi %s: %s.",
		biggest.Description, formatBRL(biggest.Amount))
}

func (r *Resolver) lastTransaction(snap *model.Snapshot) string {
	var last *model.Transaction
	for i, t := range snap.Transactions {
		if last == nil || t.Date.After(last.Date) {
			last = &snap.Transactions[i]
		}
	}
	if last == nil {
		return "Você ainda não tem lançamentos registrados."
	}
	return fmt.Sprintf("Seu último lançamento foi %s, de %s, em %s.",
		last.Description, formatBRL(last.Amount), formatDay(last.Date))
}

func (r *Resolver) transactionCount(snap *model.Snapshot, now time.Time) string {
	count := 0
	for _, t := range snap.Transactions {
		if sameMonth(t.Date, now) {
			count++
		}
	}
	if count == 0 {
		return "Você ainda não tem lançamentos neste mês."
	}
	return fmt.Sprintf("Você tem %d %s neste mês.",
		count, pluralize(count, "lançamento", "lançamentos"))
}

func (r *Resolver) savingsProgress(snap *model.Snapshot) string {
	if len(snap.Goals) == 0 {
		return "Você ainda não criou metas de poupança."
	}
	var saved float64
	var leading *model.SavingsGoal
	var leadingPct float64
	for i, g := range snap.Goals {
		saved += g.CurrentAmount
		if g.TargetAmount <= 0 {
			continue
		}
		pct := g.CurrentAmount / g.TargetAmount * 100
		if leading == nil || pct > leadingPct {
			leading = &snap.Goals[i]
			leadingPct = pct
		}
	}
	count := len(snap.Goals)
	base := fmt.Sprintf("Você já guardou %s nas suas %d %s.",
		formatBRL(saved), count, pluralize(count, "meta", "metas"))
	if leading == nil {
		return base
	}
	return fmt.Sprintf("%s A meta %s está em %s do objetivo.",
		base, leading.Name, formatPercent(leadingPct))
}

func (r *Resolver) budgetStatus(snap *model.Snapshot, now time.Time) string {
	spent := make(map[string]float64)
	for _, t := range snap.Transactions {
		if t.Kind == model.KindExpense && sameMonth(t.Date, now) {
			spent[t.CategoryID] += t.Amount
		}
	}

	type status struct {
		name  string
		label string
		pct   float64
	}
	statuses := make([]status, 0, len(snap.Budgets))
	for _, b := range snap.Budgets {
		if b.Limit <= 0 {
			continue
		}
		pct := spent[b.CategoryID] / b.Limit * 100
		label := "ok"
		switch {
		case pct >= 100:
			label = "estourado"
		case pct >= r.alertPercent:
			label = "em alerta"
		}
		name := "Sem categoria"
		if cat, ok := snap.CategoryByID(b.CategoryID); ok {
			name = cat.Name
		}
		statuses = append(statuses, status{name: name, label: label, pct: pct})
	}
	if len(statuses) == 0 {
		return "Você ainda não definiu orçamentos."
	}

	// Worst first, then cap the report.
	sort.SliceStable(statuses, func(i, j int) bool { return statuses[i].pct > statuses[j].pct })
	if len(statuses) > budgetReportLimit {
		statuses = statuses[:budgetReportLimit]
	}
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = fmt.Sprintf("%s %s (%s do limite)", s.name, s.label, formatPercent(s.pct))
	}
	return "Orçamentos: " + strings.Join(parts, "; ") + "."
}

func (r *Resolver) compareMonth(snap *model.Snapshot, now time.Time) string {
	prev := previousMonth(now)
	var current, before float64
	for _, t := range snap.Transactions {
		if t.Kind != model.KindExpense {
			continue
		}
		switch {
		case sameMonth(t.Date, now):
			current += t.Amount
		case sameMonth(t.Date, prev):
			before += t.Amount
		}
	}
	switch {
	case current == 0 && before == 0:
		return "Você ainda não tem gastos para comparar entre os meses."
	case before == 0:
		return fmt.Sprintf("Você gastou %s neste mês e não tinha gastos no mês passado.", formatBRL(current))
	}
	delta := (current - before) / before * 100
	if delta >= 0 {
		return fmt.Sprintf("Você gastou %s neste mês, %s a mais que no mês passado (%s).",
			formatBRL(current), formatPercent(delta), formatBRL(before))
	}
	return fmt.Sprintf("Você gastou %s neste mês, %s a menos que no mês passado (%s).",
		formatBRL(current), formatPercent(-delta), formatBRL(before))
}
