// Package assistant answers natural-language questions about the currently
// processed record set through an external text-completion service.
package assistant

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/brquant/screener/internal/schema"
	"github.com/brquant/screener/pkg/config"
	"github.com/brquant/screener/pkg/logger"
)

// Fallback is the fixed user-facing message for any provider failure.
const Fallback = "Desculpe, não consegui analisar os dados agora. Tente novamente em instantes."

// ErrBusy is returned while a previous question is still in flight.
// Requests are rejected, not queued.
var ErrBusy = errors.New("assistant: a question is already in flight")

// Assistant serializes questions to a Provider, one outstanding call at a
// time.
type Assistant struct {
	provider Provider
	limiter  *rate.Limiter
	maxRows  int
	busy     atomic.Bool
	logger   *logger.Logger
}

// New creates an assistant over the given provider.
func New(provider Provider, cfg config.AssistantConfig, log *logger.Logger) *Assistant {
	return &Assistant{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1),
		maxRows:  cfg.MaxRows,
		logger:   log,
	}
}

// Ask answers one question about the table. Provider failures degrade to
// the Fallback text so the session stays usable; only ErrBusy and context
// cancellation surface as errors.
func (a *Assistant) Ask(ctx context.Context, question string, table *schema.Table) (string, error) {
	if !a.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer a.busy.Store(false)

	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	prompt := BuildPrompt(question, table, a.maxRows)

	answer, err := a.provider.Complete(ctx, prompt)
	if err != nil {
		a.logger.WithError(err).Warn("Assistant completion failed")
		return Fallback, nil
	}

	return answer, nil
}
