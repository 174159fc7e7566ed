package assistant

import (
	"strings"

	"github.com/brquant/screener/internal/schema"
)

const promptPreamble = `Você é um assistente de análise fundamentalista de ações.
Responda à pergunta do usuário usando apenas a tabela abaixo (valores no formato brasileiro:
vírgula decimal, ponto de milhar). Colunas "Rank" menores indicam posições melhores.
Seja direto e cite os tickers relevantes.`

// BuildPrompt serializes the table (headers plus display rows, capped at
// maxRows) and the question into a single completion prompt. No structured
// data flows back from the answer.
func BuildPrompt(question string, table *schema.Table, maxRows int) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\nTABELA:\n")
	b.WriteString(strings.Join(table.Headers, "\t"))

	rows := table.Records
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	for _, rec := range rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(rec.Raw, "\t"))
	}

	b.WriteString("\n\nPERGUNTA: ")
	b.WriteString(question)
	return b.String()
}
