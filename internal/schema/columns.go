package schema

// Column mappings for both input schemas live here, as named tables rather
// than inline indices scattered through the normalizer. The 21-column layout
// is shared: the "neto" sheets and the simplified variant of the standard
// sheets place the same fields at the same positions.

// baseColumns maps typed fields to their position in the shared 21-column
// source layout.
var baseColumns = struct {
	Company        int
	Ticker         int
	Sector         int
	PLProjected    int
	PLDeviation    int
	CAGR           int
	DebtToEBITDA   int
	DividendYield  int
	CurrentPrice   int
	FairPrice      int
	MarginOfSafety int
}{
	Company:        0,
	Ticker:         1,
	Sector:         2,
	PLProjected:    6,
	PLDeviation:    8,
	CAGR:           9,
	DebtToEBITDA:   10,
	DividendYield:  14,
	CurrentPrice:   15,
	FairPrice:      16,
	MarginOfSafety: 17,
}

// standardColumns maps typed fields to their position in the full 33-column
// canonical layout. The first nine columns hold status plus the computed
// ranks written back by the ranking engine.
var standardColumns = struct {
	RankGeneral    int
	Status         int
	RankPL         int
	RankDeviation  int
	RankDY         int
	RankMargin     int
	RankCAGR       int
	RankDebt       int
	RankTotal      int
	Company        int
	Ticker         int
	Sector         int
	PLProjected    int
	PLDeviation    int
	CAGR           int
	DebtToEBITDA   int
	DividendYield  int
	CurrentPrice   int
	FairPrice      int
	MarginOfSafety int
	EntryPrice     int
	PriceDiff      int
	ProfileLink    int
}{
	RankGeneral:    0,
	Status:         1,
	RankPL:         2,
	RankDeviation:  3,
	RankDY:         4,
	RankMargin:     5,
	RankCAGR:       6,
	RankDebt:       7,
	RankTotal:      8,
	Company:        9,
	Ticker:         10,
	Sector:         11,
	PLProjected:    15,
	PLDeviation:    17,
	CAGR:           18,
	DebtToEBITDA:   19,
	DividendYield:  23,
	CurrentPrice:   24,
	FairPrice:      25,
	MarginOfSafety: 26,
	EntryPrice:     27,
	PriceDiff:      28,
	ProfileLink:    32,
}

// simplifiedToStandard translates each column of the simplified 21-column
// variant into its slot in the 33-column canonical layout: columns 0-17
// shift by +9, the trailing frequency/month/date columns 18-20 shift by +11,
// skipping the entry-price (27) and computed price-difference (28) slots.
var simplifiedToStandard = [21]int{
	9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
	19, 20, 21, 22, 23, 24, 25, 26, 29, 30,
	31,
}

// netoHeaders is the fixed header set for neto mode. The input's own header
// row is never trusted.
var netoHeaders = []string{
	"Empresa",
	"Ticker",
	"Setor",
	"Subsetor",
	"P/VP",
	"P/L Atual",
	"P/L Projetado",
	"P/L Médio 10a",
	"Desvio P/L (%)",
	"CAGR Lucros 5a (%)",
	"Dív. Líq./EBITDA",
	"ROE (%)",
	"Payout (%)",
	"Liquidez Diária",
	"Dividend Yield (%)",
	"Preço Atual",
	"Preço Justo",
	"Margem de Segurança (%)",
	"Frequência Dividendos",
	"Mês Pagamento",
	"Última Atualização",
}

// standardHeaders is the fixed 33-column canonical header set for standard
// mode.
var standardHeaders = []string{
	"Rank",
	"Status",
	"Rank P/L",
	"Rank Desvio",
	"Rank DY",
	"Rank Margem",
	"Rank CAGR",
	"Rank Dívida",
	"Rank Total",
	"Empresa",
	"Ticker",
	"Setor",
	"Subsetor",
	"P/VP",
	"P/L Atual",
	"P/L Projetado",
	"P/L Médio 10a",
	"Desvio P/L (%)",
	"CAGR Lucros 5a (%)",
	"Dív. Líq./EBITDA",
	"ROE (%)",
	"Payout (%)",
	"Liquidez Diária",
	"Dividend Yield (%)",
	"Preço Atual",
	"Preço Justo",
	"Margem de Segurança (%)",
	"Preço de Entrada",
	"Diferença p/ Preço Justo (%)",
	"Frequência Dividendos",
	"Mês Pagamento",
	"Última Atualização",
	"Perfil",
}

// profileLinkBase is the site the synthesized profile column points at.
const profileLinkBase = "https://investidor10.com.br/acoes/"
