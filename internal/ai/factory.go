package ai

import (
	"fmt"

	"github.com/tailwatch/tailwatch/internal/ai/ollama"
	"github.com/tailwatch/tailwatch/internal/ai/openai"
	"github.com/tailwatch/tailwatch/internal/ai/workersai"
	"github.com/tailwatch/tailwatch/internal/config"
	"github.com/tailwatch/tailwatch/pkg/models"
)

// NewProvider constructs the appropriate AI provider based on config.
// Called once at server startup.
func NewProvider(cfg config.AIConfig) (models.AIProvider, error) {
	switch cfg.Provider {
	case "workersai":
		return workersai.NewProvider(cfg.WorkersAI, cfg.InferenceTimeout), nil
	case "openai":
		return openai.NewProvider(cfg.OpenAI, cfg.InferenceTimeout), nil
	case "ollama":
		return ollama.NewProvider(cfg.Ollama, cfg.InferenceTimeout), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of workersai, openai, ollama", cfg.Provider)
	}
}

// ModelsFor returns the analysis and summary model identifiers for the
// configured provider.
func ModelsFor(cfg config.AIConfig) (analysisModel, summaryModel string) {
	switch cfg.Provider {
	case "openai":
		return cfg.OpenAI.AnalysisModel, cfg.OpenAI.SummaryModel
	case "ollama":
		return cfg.Ollama.AnalysisModel, cfg.Ollama.SummaryModel
	default:
		return cfg.WorkersAI.AnalysisModel, cfg.WorkersAI.SummaryModel
	}
}
