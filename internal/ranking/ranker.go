// Package ranking computes the multi-factor fundamental ranking over a
// normalized record set: six directed per-metric ranks, their sum, and a
// general rank derived from the sum.
package ranking

import (
	"math"
	"sort"
	"strconv"

	"github.com/brquant/screener/internal/schema"
	"github.com/brquant/screener/pkg/logger"
)

type direction int

const (
	ascending  direction = iota // lower value ranks better
	descending                  // higher value ranks better
)

// metric binds a typed field to its sort direction and rank slot.
type metric struct {
	name  string
	dir   direction
	value func(*schema.StockRecord) float64
	rank  func(*schema.StockRecord, int)
}

// metrics is the fixed ranking table. Directions follow the screening
// methodology: cheap multiples, low leverage and negative deviation rank
// better ascending; yield, margin of safety and growth rank better
// descending.
var metrics = []metric{
	{
		name:  "pl_projected",
		dir:   ascending,
		value: func(r *schema.StockRecord) float64 { return r.PLProjected },
		rank:  func(r *schema.StockRecord, k int) { r.RankPL = k },
	},
	{
		name:  "pl_deviation",
		dir:   ascending,
		value: func(r *schema.StockRecord) float64 { return r.PLDeviation },
		rank:  func(r *schema.StockRecord, k int) { r.RankDeviation = k },
	},
	{
		name:  "dividend_yield",
		dir:   descending,
		value: func(r *schema.StockRecord) float64 { return r.DividendYield },
		rank:  func(r *schema.StockRecord, k int) { r.RankDividendYield = k },
	},
	{
		name:  "margin_of_safety",
		dir:   descending,
		value: func(r *schema.StockRecord) float64 { return r.MarginOfSafety },
		rank:  func(r *schema.StockRecord, k int) { r.RankMargin = k },
	},
	{
		name:  "cagr",
		dir:   descending,
		value: func(r *schema.StockRecord) float64 { return r.CAGR },
		rank:  func(r *schema.StockRecord, k int) { r.RankCAGR = k },
	},
	{
		name:  "debt_to_ebitda",
		dir:   ascending,
		value: func(r *schema.StockRecord) float64 { return r.DebtToEBITDA },
		rank:  func(r *schema.StockRecord, k int) { r.RankDebt = k },
	},
}

// Ranker assigns ranks to a normalized table.
type Ranker struct {
	logger *logger.Logger
}

// NewRanker creates a new ranker
func NewRanker(log *logger.Logger) *Ranker {
	return &Ranker{logger: log}
}

// Rank mutates the table in place: per-metric ranks, rank total, general
// rank, the rank write-back into display rows for layouts that carry rank
// columns, and finally the default ordering by price difference.
func (r *Ranker) Rank(t *schema.Table) {
	records := t.Records
	if len(records) == 0 {
		return
	}

	for _, m := range metrics {
		assignRanks(records, m.dir, m.value, m.rank)
	}

	for _, rec := range records {
		rec.RankTotal = rec.RankPL + rec.RankDeviation + rec.RankDividendYield +
			rec.RankMargin + rec.RankCAGR + rec.RankDebt
	}

	// The general rank is the same procedure applied once more, over the
	// total, ascending.
	assignRanks(records, ascending,
		func(rec *schema.StockRecord) float64 { return float64(rec.RankTotal) },
		func(rec *schema.StockRecord, k int) { rec.RankGeneral = k },
	)

	if t.Layout.HasRankColumns {
		for _, rec := range records {
			writeRankRow(rec)
		}
	}

	// Default display order: price difference ascending, missing last.
	sort.SliceStable(records, func(i, j int) bool {
		return sortKey(records[i].PriceDiffPercent, ascending) <
			sortKey(records[j].PriceDiffPercent, ascending)
	})

	r.logger.WithFields(map[string]interface{}{
		"records": len(records),
		"mode":    t.Mode,
	}).Debug("Ranking completed")
}

// assignRanks sorts a copy of the record order by one metric and assigns
// positions 1..N. The underlying slice is not reordered, so ties keep the
// input order for every metric independently.
func assignRanks(records []*schema.StockRecord, dir direction, value func(*schema.StockRecord) float64, rank func(*schema.StockRecord, int)) {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		a := sortKey(value(records[order[i]]), dir)
		b := sortKey(value(records[order[j]]), dir)
		if dir == ascending {
			return a < b
		}
		return a > b
	})

	for pos, idx := range order {
		rank(records[idx], pos+1)
	}
}

// sortKey remaps both missing sentinels to the worst value for the current
// direction. A missing value never wins a rank through the sign of its
// sentinel, and raw infinities never reach arithmetic.
func sortKey(v float64, dir direction) float64 {
	if math.IsInf(v, 0) {
		if dir == ascending {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return v
}

// writeRankRow overwrites the nine leading rank cells of a canonical
// display row: general rank at 0, the six metric ranks at 2..7 and the
// total at 8. The status column at 1 is left alone.
func writeRankRow(rec *schema.StockRecord) {
	row := rec.Raw
	if len(row) < 9 {
		return
	}
	row[0] = strconv.Itoa(rec.RankGeneral)
	row[2] = strconv.Itoa(rec.RankPL)
	row[3] = strconv.Itoa(rec.RankDeviation)
	row[4] = strconv.Itoa(rec.RankDividendYield)
	row[5] = strconv.Itoa(rec.RankMargin)
	row[6] = strconv.Itoa(rec.RankCAGR)
	row[7] = strconv.Itoa(rec.RankDebt)
	row[8] = strconv.Itoa(rec.RankTotal)
}
