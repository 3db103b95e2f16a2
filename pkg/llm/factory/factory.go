package factory

import (
	"fmt"

	"legal-drafting-be/pkg/llm"
	"legal-drafting-be/pkg/llm/gemini"
)

// NewLLMProvider builds one provider bound to a single API key.
func NewLLMProvider(providerType, modelName, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini", "":
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
