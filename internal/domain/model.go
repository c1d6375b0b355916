package domain

// ModelInfo describes one model identifier advertised by the provider.
type ModelInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContextLength int    `json:"context_length"`
}

// DefaultModel is used until setup picks one.
const DefaultModel = "openai/gpt-4o"

// FallbackModels is offered by setup when the live model listing fails.
// The list-models command never falls back; it surfaces the failure.
var FallbackModels = []string{
	"microsoft/phi-3-medium-128k-instruct",
	"microsoft/phi-3-mini-128k-instruct",
	"meta-llama/llama-3-8b-instruct",
	"mistralai/mistral-7b-instruct",
	"openai/gpt-4o",
}
