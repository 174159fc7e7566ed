package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/brquant/screener/internal/numparse"
)

// ErrMalformedInput is returned when the pasted text does not contain at
// least a header row and one data row.
var ErrMalformedInput = errors.New("malformed input: expected a header row and at least one data row")

// Normalize parses raw tab-separated text into the canonical record set for
// the given mode. Individual bad cells degrade to the missing sentinel;
// only a structurally empty input fails.
func Normalize(rawText string, mode Mode) (*Table, error) {
	lines := splitLines(rawText)
	if len(lines) < 2 {
		return nil, ErrMalformedInput
	}

	switch mode {
	case ModeNeto:
		return normalizeNeto(lines), nil
	case ModeStandard:
		return normalizeStandard(lines), nil
	default:
		return nil, fmt.Errorf("unknown mode %q: %w", mode, ErrMalformedInput)
	}
}

// splitLines splits pasted text into non-empty lines, tolerating Windows
// line endings and a trailing newline.
func splitLines(rawText string) []string {
	var lines []string
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// normalizeNeto maps the fixed 21-column layout. The input header row is
// discarded; the emitted header set is always netoHeaders.
func normalizeNeto(lines []string) *Table {
	records := make([]*StockRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := padRow(strings.Split(line, "\t"), len(netoHeaders))

		rec := &StockRecord{
			Raw:     cells,
			Company: strings.TrimSpace(cells[baseColumns.Company]),
			Ticker:  strings.TrimSpace(cells[baseColumns.Ticker]),
			Sector:  strings.TrimSpace(cells[baseColumns.Sector]),

			PLProjected:    numparse.Parse(cells[baseColumns.PLProjected]),
			PLDeviation:    numparse.Parse(cells[baseColumns.PLDeviation]),
			CAGR:           numparse.Parse(cells[baseColumns.CAGR]),
			DebtToEBITDA:   numparse.Parse(cells[baseColumns.DebtToEBITDA]),
			DividendYield:  numparse.Parse(cells[baseColumns.DividendYield]),
			CurrentPrice:   numparse.Parse(cells[baseColumns.CurrentPrice]),
			FairPrice:      numparse.Parse(cells[baseColumns.FairPrice]),
			MarginOfSafety: numparse.Parse(cells[baseColumns.MarginOfSafety]),
		}
		rec.PriceDiffPercent = priceDiff(rec.CurrentPrice, rec.FairPrice)
		rec.ID = recordID(rec.Ticker)

		records = append(records, rec)
	}

	return &Table{
		Mode:          ModeNeto,
		Records:       records,
		Headers:       netoHeaders,
		HiddenColumns: []int{},
		Layout: Layout{
			StickyColumns:     []int{baseColumns.Company, baseColumns.Ticker},
			TickerColumn:      baseColumns.Ticker,
			CompanyColumn:     baseColumns.Company,
			StatusColumn:      -1,
			GeneralRankColumn: -1,
			HasRankColumns:    false,
		},
	}
}

// normalizeStandard maps the 33-column canonical layout. When the input's
// header starts with "empresa" it is the simplified 21-column variant and
// each row is remapped into the canonical slots first.
func normalizeStandard(lines []string) *Table {
	headerCells := strings.Split(lines[0], "\t")
	simplified := strings.EqualFold(strings.TrimSpace(headerCells[0]), "empresa")

	hidden := []int{}
	if simplified {
		hidden = []int{standardColumns.Status, standardColumns.EntryPrice}
	}

	records := make([]*StockRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := strings.Split(line, "\t")
		if simplified {
			cells = remapSimplified(cells)
		} else {
			cells = padRow(cells, len(standardHeaders))
		}

		rec := &StockRecord{
			Raw:     cells,
			Company: strings.TrimSpace(cells[standardColumns.Company]),
			Ticker:  strings.TrimSpace(cells[standardColumns.Ticker]),
			Sector:  strings.TrimSpace(cells[standardColumns.Sector]),

			PLProjected:      numparse.Parse(cells[standardColumns.PLProjected]),
			PLDeviation:      numparse.Parse(cells[standardColumns.PLDeviation]),
			CAGR:             numparse.Parse(cells[standardColumns.CAGR]),
			DebtToEBITDA:     numparse.Parse(cells[standardColumns.DebtToEBITDA]),
			DividendYield:    numparse.Parse(cells[standardColumns.DividendYield]),
			CurrentPrice:     numparse.Parse(cells[standardColumns.CurrentPrice]),
			FairPrice:        numparse.Parse(cells[standardColumns.FairPrice]),
			MarginOfSafety:   numparse.Parse(cells[standardColumns.MarginOfSafety]),
			PriceDiffPercent: numparse.Parse(cells[standardColumns.PriceDiff]),
		}
		rec.ID = recordID(rec.Ticker)

		records = append(records, rec)
	}

	return &Table{
		Mode:          ModeStandard,
		Records:       records,
		Headers:       standardHeaders,
		HiddenColumns: hidden,
		Layout: Layout{
			StickyColumns: []int{
				standardColumns.RankGeneral,
				standardColumns.Company,
				standardColumns.Ticker,
			},
			TickerColumn:      standardColumns.Ticker,
			CompanyColumn:     standardColumns.Company,
			StatusColumn:      standardColumns.Status,
			GeneralRankColumn: standardColumns.RankGeneral,
			HasRankColumns:    true,
		},
	}
}

// remapSimplified copies a simplified 21-column row into the 33-column
// canonical layout, synthesizes the profile-link column from the ticker and
// computes the formatted price-difference column.
func remapSimplified(cells []string) []string {
	src := padRow(cells, len(simplifiedToStandard))
	dst := make([]string, len(standardHeaders))

	for from, to := range simplifiedToStandard {
		dst[to] = src[from]
	}

	if ticker := strings.TrimSpace(dst[standardColumns.Ticker]); ticker != "" {
		dst[standardColumns.ProfileLink] = profileLinkBase + strings.ToLower(ticker) + "/"
	}

	price := numparse.Parse(dst[standardColumns.CurrentPrice])
	fair := numparse.Parse(dst[standardColumns.FairPrice])
	dst[standardColumns.PriceDiff] = formatPercent(priceDiff(price, fair))

	return dst
}

// priceDiff returns (current-fair)/fair*100 when both values are concrete
// and fair is positive, and zero otherwise.
func priceDiff(current, fair float64) float64 {
	if numparse.IsMissing(current) || numparse.IsMissing(fair) || fair <= 0 {
		return 0
	}
	return (current - fair) / fair * 100
}

// formatPercent renders a percentage with two decimals and a comma decimal
// separator, e.g. -16.666 -> "-16,67%".
func formatPercent(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	return strings.Replace(s, ".", ",", 1) + "%"
}

// padRow right-pads cells with empty strings up to width. Short rows are
// padded, never rejected.
func padRow(cells []string, width int) []string {
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}

// recordID returns the ticker, or a generated placeholder for rows without
// one. Placeholders are unique within a session only; nothing persists
// across calls.
func recordID(ticker string) string {
	if ticker != "" {
		return ticker
	}
	return "rec-" + uuid.NewString()[:8]
}
