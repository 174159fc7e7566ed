package screener

import (
	"strings"

	"github.com/brquant/screener/internal/schema"
)

// ExportTSV serializes a table back into the tab-separated wire format of
// the input: the header row followed by every canonical display row.
func ExportTSV(t *schema.Table) string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Headers, "\t"))
	for _, rec := range t.Records {
		b.WriteByte('\n')
		b.WriteString(strings.Join(rec.Raw, "\t"))
	}
	return b.String()
}
