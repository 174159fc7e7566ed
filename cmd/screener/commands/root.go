package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Screener - ranking fundamentalista de ações a partir de planilhas coladas",
	Long: `Screener CLI

Normaliza planilhas de screening (texto separado por tabulações, layout
"standard" ou "neto"), calcula o ranking multifator e serve o resultado
para o frontend via API HTTP.

Examples:
  go run ./cmd/screener serve
  go run ./cmd/screener process --mode standard dados.tsv`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
