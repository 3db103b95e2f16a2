package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"legal-drafting-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestWrapErrorClassifiesAPIErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind llm.FailureKind
		code int
	}{
		{"forbidden key", genai.APIError{Code: 403, Status: "PERMISSION_DENIED"}, llm.FailureAuth, 403},
		{"quota", fmt.Errorf("generate: %w", genai.APIError{Code: 429}), llm.FailureQuota, 429},
		{"server", &genai.APIError{Code: 503}, llm.FailureNetwork, 503},
		{"timeout", context.DeadlineExceeded, llm.FailureNetwork, 0},
		{"other", errors.New("boom"), llm.FailureUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pe *llm.ProviderError
			require.ErrorAs(t, wrapError(tt.err), &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.code, pe.StatusCode)
		})
	}
}

func TestMissingKeyIsAuthFailure(t *testing.T) {
	p := NewGeminiProvider("", "")

	_, err := p.Generate(context.Background(), "hello")

	assert.Equal(t, llm.FailureAuth, llm.Classify(err))
	assert.Equal(t, defaultModel, p.ModelName)
}

func TestContentConfig(t *testing.T) {
	empty := contentConfig(llm.Options{Model: "m"})
	assert.Nil(t, empty.Temperature)
	assert.Zero(t, empty.MaxOutputTokens)

	cfg := contentConfig(llm.ApplyOptions(llm.Options{}, llm.WithTemperature(0.3), llm.WithMaxOutputTokens(512)))
	assert.Equal(t, float32(0.3), *cfg.Temperature)
	assert.Equal(t, int32(512), cfg.MaxOutputTokens)
}
