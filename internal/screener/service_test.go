package screener

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brquant/screener/internal/schema"
	"github.com/brquant/screener/pkg/logger"
)

// fullStandardInput builds a 33-column standard sheet with three rows. Rank
// cells are left blank; the pipeline fills them in.
func fullStandardInput() string {
	row := func(company, ticker, pl, price, fair, diff string) string {
		cells := make([]string, 33)
		cells[9], cells[10], cells[11] = company, ticker, "Setor"
		cells[15] = pl
		cells[24], cells[25] = price, fair
		cells[28] = diff
		return strings.Join(cells, "\t")
	}

	header := make([]string, 33)
	header[0], header[9], header[10] = "Rank", "Empresa", "Ticker"

	return strings.Join([]string{
		strings.Join(header, "\t"),
		row("Caro SA", "CAR3", "22", "R$50,00", "R$40,00", "25,00%"),
		row("Justo SA", "JUS3", "10", "R$30,00", "R$30,00", "0,00%"),
		row("Barato SA", "BAR3", "5", "R$20,00", "R$40,00", "-50,00%"),
	}, "\n")
}

func TestProcessStandardEndToEnd(t *testing.T) {
	service := NewService(logger.NewNop())

	table, err := service.Process(fullStandardInput(), schema.ModeStandard)
	require.NoError(t, err)
	require.Len(t, table.Records, 3)

	// Default order: price difference ascending.
	assert.Equal(t, "BAR3", table.Records[0].Ticker)
	assert.Equal(t, "JUS3", table.Records[1].Ticker)
	assert.Equal(t, "CAR3", table.Records[2].Ticker)

	// Rank cells were written back into each display row.
	for _, rec := range table.Records {
		assert.Equal(t, fmt.Sprint(rec.RankGeneral), rec.Raw[0])
		assert.Equal(t, fmt.Sprint(rec.RankPL), rec.Raw[2])
		assert.Equal(t, fmt.Sprint(rec.RankTotal), rec.Raw[8])
	}

	// Lowest P/L ranks first on that metric.
	assert.Equal(t, 1, table.Records[0].RankPL)
}

func TestProcessMalformedInput(t *testing.T) {
	service := NewService(logger.NewNop())

	_, err := service.Process("só o cabeçalho", schema.ModeStandard)
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
}

func TestExportRoundTrip(t *testing.T) {
	service := NewService(logger.NewNop())
	input := fullStandardInput()

	table, err := service.Process(input, schema.ModeStandard)
	require.NoError(t, err)

	out := ExportTSV(table)
	outLines := strings.Split(out, "\n")
	inLines := strings.Split(input, "\n")
	require.Len(t, outLines, len(inLines))

	// Same column count everywhere; headers come from the canonical set.
	assert.Len(t, strings.Split(outLines[0], "\t"), 33)

	// Non-rank cells survive the round trip. Rows were reordered by price
	// difference, so compare by ticker.
	inByTicker := make(map[string][]string)
	for _, line := range inLines[1:] {
		cells := strings.Split(line, "\t")
		inByTicker[cells[10]] = cells
	}
	for _, line := range outLines[1:] {
		cells := strings.Split(line, "\t")
		require.Len(t, cells, 33)
		orig := inByTicker[cells[10]]
		require.NotNil(t, orig)
		for i := 9; i < 33; i++ {
			assert.Equal(t, orig[i], cells[i], "ticker %s column %d", cells[10], i)
		}
	}
}

func TestExportNetoKeepsWireFormat(t *testing.T) {
	service := NewService(logger.NewNop())
	input := "cabeçalho ignorado\nItaú\tITUB4\tBancos"

	table, err := service.Process(input, schema.ModeNeto)
	require.NoError(t, err)

	out := ExportTSV(table)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[0], "\t"), 21)
	assert.Len(t, strings.Split(lines[1], "\t"), 21)
	assert.True(t, strings.HasPrefix(lines[1], "Itaú\tITUB4\tBancos\t"))
}
