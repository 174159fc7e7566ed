package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderWidths(t *testing.T) {
	assert.Len(t, netoHeaders, 21)
	assert.Len(t, standardHeaders, 33)
}

func TestSimplifiedTranslationTable(t *testing.T) {
	// Columns 0-17 shift by +9, 18-20 by +11.
	for from, to := range simplifiedToStandard {
		if from <= 17 {
			assert.Equal(t, from+9, to, "simplified column %d", from)
		} else {
			assert.Equal(t, from+11, to, "simplified column %d", from)
		}
	}

	// The skipped slots are exactly the entry-price and computed
	// price-difference columns.
	targets := make(map[int]bool)
	for _, to := range simplifiedToStandard {
		targets[to] = true
	}
	assert.False(t, targets[standardColumns.EntryPrice])
	assert.False(t, targets[standardColumns.PriceDiff])
	assert.False(t, targets[standardColumns.ProfileLink])
}

func TestBaseAndStandardTablesAgree(t *testing.T) {
	// The simplified variant drops into the canonical layout at the slots
	// the standard table extracts from.
	pairs := [][2]int{
		{baseColumns.Company, standardColumns.Company},
		{baseColumns.Ticker, standardColumns.Ticker},
		{baseColumns.Sector, standardColumns.Sector},
		{baseColumns.PLProjected, standardColumns.PLProjected},
		{baseColumns.PLDeviation, standardColumns.PLDeviation},
		{baseColumns.CAGR, standardColumns.CAGR},
		{baseColumns.DebtToEBITDA, standardColumns.DebtToEBITDA},
		{baseColumns.DividendYield, standardColumns.DividendYield},
		{baseColumns.CurrentPrice, standardColumns.CurrentPrice},
		{baseColumns.FairPrice, standardColumns.FairPrice},
		{baseColumns.MarginOfSafety, standardColumns.MarginOfSafety},
	}
	for _, p := range pairs {
		assert.Equal(t, simplifiedToStandard[p[0]], p[1])
	}
}
