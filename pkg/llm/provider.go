// Package llm holds the backend-neutral generation contract the dispatcher
// rotates over, plus the failure taxonomy shared by every backend.
package llm

import "context"

// Options tune a single generation call. Zero values keep the backend's
// defaults.
type Options struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

type Option func(*Options)

// WithModel overrides the model bound to the provider for one call.
func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithTemperature(t float32) Option {
	return func(o *Options) { o.Temperature = t }
}

func WithMaxOutputTokens(n int32) Option {
	return func(o *Options) { o.MaxOutputTokens = n }
}

// ApplyOptions returns base with opts applied in order.
func ApplyOptions(base Options, opts ...Option) Options {
	for _, apply := range opts {
		apply(&base)
	}
	return base
}

// LLMProvider is one backend bound to one API key. Generate must return a
// *ProviderError on failure so the dispatcher can report the cause.
type LLMProvider interface {
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}
