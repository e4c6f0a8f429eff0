package intent

import "github.com/meubolso/voz/internal/model"

// All phrases below are stored pre-normalized (lowercase, no accents) so a
// single normalize.Text pass on the utterance is enough for matching.

// Route pairs the application path of a screen with the spoken keywords that
// select it.
type Route struct {
	Path     string
	Keywords []string
}

// defaultRoutes lists every navigable screen. Order matters: earlier entries
// win when more than one keyword is contained in the utterance.
var defaultRoutes = []Route{
	{Path: "/dashboard", Keywords: []string{"dashboard", "inicio", "painel", "resumo geral"}},
	{Path: "/transactions", Keywords: []string{"transacoes", "lancamentos", "extrato", "movimentacoes"}},
	{Path: "/reports", Keywords: []string{"relatorios", "relatorio", "graficos"}},
	{Path: "/commitments", Keywords: []string{"compromissos", "contas a pagar", "agenda de contas"}},
	{Path: "/budgets", Keywords: []string{"orcamentos", "orcamento", "limites de gasto"}},
	{Path: "/goals", Keywords: []string{"metas", "poupanca", "objetivos"}},
	{Path: "/categories", Keywords: []string{"categorias"}},
	{Path: "/suppliers", Keywords: []string{"fornecedores"}},
	{Path: "/payment-methods", Keywords: []string{"formas de pagamento", "meios de pagamento"}},
	{Path: "/settings", Keywords: []string{"configuracoes", "ajustes"}},
}

var helpTriggers = []string{
	"ajuda",
	"me ajude",
	"o que voce pode fazer",
	"o que voce faz",
	"como funciona",
	"quais comandos",
	"que comandos",
}

var navigationTriggers = []string{
	"ir para",
	"va para",
	"vai para",
	"abrir",
	"abra",
	"abre",
	"mostrar tela",
	"quero ver",
	"me leva",
	"navegar",
	"pagina de",
	"tela de",
}

// Checked before transaction triggers: phrases like "conta para pagar"
// overlap with spending vocabulary.
var commitmentTriggers = []string{
	"compromisso",
	"agendar",
	"agende",
	"conta para pagar",
	"conta pra pagar",
	"lembrete de pagamento",
	"me lembra de pagar",
	"anotar conta",
	"boleto",
	"vencimento",
	"vence dia",
	"vence no dia",
}

var transactionTriggers = []string{
	"gastei",
	"paguei",
	"comprei",
	"recebi",
	"ganhei",
	"entrou",
	"lancar",
	"registrar gasto",
	"registrar despesa",
	"nova despesa",
	"novo gasto",
	"nova receita",
}

var currencyWords = []string{
	"real",
	"reais",
	"conto",
	"contos",
	"pila",
	"r$",
}

// queryPattern binds a query key to its trigger phrases. The table is scanned
// in declaration order and the first key with a contained phrase wins, so more
// specific phrasings must come before generic ones.
type queryPattern struct {
	Key     model.QueryKey
	Phrases []string
}

var defaultQueryPatterns = []queryPattern{
	{Key: model.QueryGreeting, Phrases: []string{"bom dia", "boa tarde", "boa noite", "ola assistente", "oi assistente", "tudo bem"}},
	{Key: model.QueryCommitmentsOverdue, Phrases: []string{"contas vencidas", "contas atrasadas", "em atraso", "alguma conta vencida", "estou devendo"}},
	{Key: model.QueryCommitmentsToday, Phrases: []string{"contas hoje", "contas de hoje", "compromissos hoje", "compromissos de hoje", "pagar hoje", "vence hoje"}},
	{Key: model.QueryCommitmentsWeek, Phrases: []string{"contas da semana", "compromissos da semana", "pagar essa semana", "pagar esta semana", "vence essa semana"}},
	{Key: model.QueryCommitmentsMonth, Phrases: []string{"contas do mes", "compromissos do mes", "pagar esse mes", "pagar este mes"}},
	{Key: model.QueryNextCommitment, Phrases: []string{"proxima conta", "proximo compromisso", "proximo vencimento", "qual conta vence"}},
	{Key: model.QuerySpentToday, Phrases: []string{"gastei hoje", "gastos de hoje", "gasto de hoje"}},
	{Key: model.QuerySpentWeek, Phrases: []string{"gastei essa semana", "gastei esta semana", "gastos da semana"}},
	{Key: model.QuerySpentMonth, Phrases: []string{"gastei esse mes", "gastei este mes", "gastos do mes", "gasto do mes", "quanto gastei"}},
	{Key: model.QueryIncomeMonth, Phrases: []string{"quanto recebi", "recebi esse mes", "receitas do mes", "quanto ganhei", "quanto entrou"}},
	{Key: model.QueryBalanceMonth, Phrases: []string{"saldo do mes", "meu saldo", "qual o saldo", "sobrou quanto", "quanto sobrou"}},
	{Key: model.QueryCompareMonth, Phrases: []string{"comparado com o mes passado", "em relacao ao mes passado", "mais que o mes passado", "menos que o mes passado", "comparar meses"}},
	{Key: model.QueryTopCategory, Phrases: []string{"categoria que mais", "maior categoria", "onde gastei mais", "onde estou gastando mais", "gastei mais com o que"}},
	{Key: model.QueryBiggestExpense, Phrases: []string{"maior gasto", "maior despesa", "gasto mais caro", "despesa mais cara"}},
	{Key: model.QueryLastTransaction, Phrases: []string{"ultimo lancamento", "ultima transacao", "ultimo gasto", "ultima compra"}},
	{Key: model.QueryTransactionCount, Phrases: []string{"quantos lancamentos", "quantas transacoes", "quantas compras"}},
	{Key: model.QuerySavingsProgress, Phrases: []string{"minhas metas", "como estao as metas", "quanto ja poupei", "quanto ja guardei", "progresso da poupanca"}},
	{Key: model.QueryBudgetStatus, Phrases: []string{"como esta o orcamento", "como estao os orcamentos", "estourei o orcamento", "limite de gastos", "passei do limite"}},
}
