// Package llm provides the language-model client used to parse resumes and
// produce free-text job-fit analysis.
package llm

import (
	"os"
	"strings"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for cheap, short generations
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction: resume parsing, job matching
	TierStandard ModelTier = "standard"
	// TierAdvanced is for open-ended writing: suggestions, interview sets
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Default sampling temperatures
const (
	DefaultJSONTemperature    float32 = 0.1
	DefaultContentTemperature float32 = 0.7
)

// Config holds the model configuration for the application
type Config struct {
	Provider           Provider
	Models             map[ModelTier]string
	JSONTemperature    float32
	ContentTemperature float32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-flash",
		},
		JSONTemperature:    DefaultJSONTemperature,
		ContentTemperature: DefaultContentTemperature,
	}
}

// ConfigFromEnv returns the default configuration with GEMINI_MODEL, when set,
// used for every tier.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if model := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); model != "" {
		for tier := range cfg.Models {
			cfg = cfg.WithModel(tier, model)
		}
	}
	return cfg
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}
