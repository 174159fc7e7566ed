package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brquant/screener/internal/schema"
	"github.com/brquant/screener/internal/screener"
	"github.com/brquant/screener/pkg/config"
	"github.com/brquant/screener/pkg/logger"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [arquivo]",
	Short: "Processa uma planilha e imprime o ranking",
	Long: `Executa o pipeline (normalização + ranking) sobre um arquivo TSV,
ou sobre stdin quando nenhum arquivo é informado, e imprime o resultado.

Example:
  go run ./cmd/screener process --mode standard dados.tsv
  cat dados.tsv | go run ./cmd/screener process --mode neto --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

var (
	processMode   string
	processFormat string
)

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&processMode, "mode", "standard", "layout da planilha (standard|neto)")
	processCmd.Flags().StringVar(&processFormat, "format", "tsv", "formato de saída (tsv|json)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	mode := schema.Mode(processMode)
	if !mode.Valid() {
		return fmt.Errorf("invalid mode %q (expected standard or neto)", processMode)
	}

	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !verbose {
		cfg.LogLevel = "warn"
	}
	log := logger.New(cfg)

	service := screener.NewService(log)
	table, err := service.Process(string(raw), mode)
	if err != nil {
		return err
	}

	switch processFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	default:
		fmt.Println(screener.ExportTSV(table))
		return nil
	}
}
