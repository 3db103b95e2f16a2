package gemini

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"legal-drafting-be/pkg/llm"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GeminiProvider talks to the Gemini API with a single API key. The client is
// created on first use so a bad key surfaces as a failed call, not a boot error.
type GeminiProvider struct {
	apiKey    string
	ModelName string

	mu     sync.Mutex
	client *genai.Client
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	if modelName == "" {
		modelName = defaultModel
	}
	return &GeminiProvider{
		apiKey:    apiKey,
		ModelName: modelName,
	}
}

func (g *GeminiProvider) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	if g.apiKey == "" {
		return nil, &llm.ProviderError{Kind: llm.FailureAuth, Err: errors.New("missing api key")}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{Kind: llm.FailureUnknown, Err: fmt.Errorf("create genai client: %w", err)}
	}
	g.client = client
	return client, nil
}

// Generate sends prompt as one user turn.
func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(llm.Options{Model: g.ModelName}, opts...)

	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	res, err := client.Models.GenerateContent(ctx, options.Model, genai.Text(prompt), contentConfig(options))
	if err != nil {
		return "", wrapError(err)
	}

	// an empty reply is still a completed call; callers decide what to keep
	return res.Text(), nil
}

func contentConfig(o llm.Options) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if o.Temperature > 0 {
		config.Temperature = genai.Ptr(o.Temperature)
	}
	if o.MaxOutputTokens > 0 {
		config.MaxOutputTokens = o.MaxOutputTokens
	}
	return config
}

func wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{Kind: llm.KindForStatus(apiErr.Code), StatusCode: apiErr.Code, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &llm.ProviderError{Kind: llm.KindForStatus(apiErrPtr.Code), StatusCode: apiErrPtr.Code, Err: err}
	}
	return &llm.ProviderError{Kind: llm.Classify(err), Err: err}
}
