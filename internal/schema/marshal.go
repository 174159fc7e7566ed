package schema

import (
	"encoding/json"

	"github.com/brquant/screener/internal/numparse"
)

// MarshalJSON renders the missing sentinel as null: IEEE infinities have no
// JSON representation and must not leak past the record boundary.
func (r *StockRecord) MarshalJSON() ([]byte, error) {
	type alias StockRecord
	return json.Marshal(&struct {
		*alias
		PLProjected      *float64 `json:"plProjected"`
		PLDeviation      *float64 `json:"plDeviation"`
		DividendYield    *float64 `json:"dividendYield"`
		MarginOfSafety   *float64 `json:"marginOfSafety"`
		CAGR             *float64 `json:"cagr"`
		DebtToEBITDA     *float64 `json:"debtToEbitda"`
		CurrentPrice     *float64 `json:"currentPrice"`
		FairPrice        *float64 `json:"fairPrice"`
		PriceDiffPercent *float64 `json:"priceDiffPercent"`
	}{
		alias:            (*alias)(r),
		PLProjected:      nullable(r.PLProjected),
		PLDeviation:      nullable(r.PLDeviation),
		DividendYield:    nullable(r.DividendYield),
		MarginOfSafety:   nullable(r.MarginOfSafety),
		CAGR:             nullable(r.CAGR),
		DebtToEBITDA:     nullable(r.DebtToEBITDA),
		CurrentPrice:     nullable(r.CurrentPrice),
		FairPrice:        nullable(r.FairPrice),
		PriceDiffPercent: nullable(r.PriceDiffPercent),
	})
}

func nullable(v float64) *float64 {
	if numparse.IsMissing(v) {
		return nil
	}
	return &v
}
