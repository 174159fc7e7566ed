package schema

// Mode selects which input schema the normalizer expects.
type Mode string

const (
	// ModeStandard is the 33-column canonical layout, with auto-detection
	// of the simplified 21-column variant.
	ModeStandard Mode = "standard"
	// ModeNeto is the fixed 21-column layout.
	ModeNeto Mode = "neto"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeStandard || m == ModeNeto
}

// StockRecord is one normalized data row. Raw is the canonical display row
// (always padded to the active header count); the typed fields are what the
// ranking engine operates on. Numeric fields hold either a finite value or
// the missing sentinel from numparse, never NaN.
type StockRecord struct {
	ID      string   `json:"id"`
	Raw     []string `json:"raw"`
	Ticker  string   `json:"ticker"`
	Company string   `json:"company"`
	Sector  string   `json:"sector"`

	PLProjected      float64 `json:"plProjected"`
	PLDeviation      float64 `json:"plDeviation"`
	DividendYield    float64 `json:"dividendYield"`
	MarginOfSafety   float64 `json:"marginOfSafety"`
	CAGR             float64 `json:"cagr"`
	DebtToEBITDA     float64 `json:"debtToEbitda"`
	CurrentPrice     float64 `json:"currentPrice"`
	FairPrice        float64 `json:"fairPrice"`
	PriceDiffPercent float64 `json:"priceDiffPercent"`

	// Ranks are 1-based and assigned by the ranking engine.
	RankPL            int `json:"rankPL"`
	RankDeviation     int `json:"rankDeviation"`
	RankDividendYield int `json:"rankDividendYield"`
	RankMargin        int `json:"rankMargin"`
	RankCAGR          int `json:"rankCAGR"`
	RankDebt          int `json:"rankDebt"`
	RankTotal         int `json:"rankTotal"`
	RankGeneral       int `json:"rankGeneral"`
}

// Layout describes where the UI-relevant columns live for a mode. Index
// fields hold -1 when the layout has no such column.
type Layout struct {
	StickyColumns     []int `json:"stickyColumnIndices"`
	TickerColumn      int   `json:"tickerColumnIndex"`
	CompanyColumn     int   `json:"companyColumnIndex"`
	StatusColumn      int   `json:"statusColumnIndex"`
	GeneralRankColumn int   `json:"generalRankColumnIndex"`
	// HasRankColumns is true when the display rows carry the nine leading
	// rank cells the ranking engine writes back into.
	HasRankColumns bool `json:"hasRankColumns"`
}

// Table is the result bundle of one normalize-and-rank pass. It is the
// single source of truth the consuming shell renders from.
type Table struct {
	Mode          Mode           `json:"mode"`
	Records       []*StockRecord `json:"records"`
	Headers       []string       `json:"headers"`
	HiddenColumns []int          `json:"initialHiddenColumnIndices"`
	Layout        Layout         `json:"layoutConfig"`
}
