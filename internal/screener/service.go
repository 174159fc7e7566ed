// Package screener wires the pipeline together: normalize a pasted sheet,
// rank the records, hand back one result bundle.
package screener

import (
	"time"

	"github.com/brquant/screener/internal/ranking"
	"github.com/brquant/screener/internal/schema"
	"github.com/brquant/screener/pkg/logger"
)

// Service runs the normalize-and-rank pipeline.
type Service struct {
	ranker *ranking.Ranker
	logger *logger.Logger
}

// NewService creates a new screener service
func NewService(log *logger.Logger) *Service {
	return &Service{
		ranker: ranking.NewRanker(log),
		logger: log,
	}
}

// Process normalizes rawText for the given mode and ranks the resulting
// records. It is a one-shot, synchronous transformation; the returned table
// is a complete, self-contained result set.
func (s *Service) Process(rawText string, mode schema.Mode) (*schema.Table, error) {
	start := time.Now()

	table, err := schema.Normalize(rawText, mode)
	if err != nil {
		return nil, err
	}

	s.ranker.Rank(table)

	s.logger.WithFields(map[string]interface{}{
		"mode":     mode,
		"records":  len(table.Records),
		"duration": time.Since(start),
	}).Info("Sheet processed")

	return table, nil
}
