package assistant

import "context"

// Provider is the interface to an external text-completion service. The
// assistant treats it as opaque: one prompt in, one block of text out.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
