// Package llm provides the client abstraction over the external text-analysis
// collaborator. The scoring core never talks to a provider directly; it goes
// through the Client interface so tests can substitute fakes and a provider
// swap stays local to this package.
package llm

// ModelTier selects a capability level for a call. Career-text analysis runs
// on the lite tier; per-candidate fit judgments use the standard tier.
type ModelTier string

const (
	// TierLite is for cheap classification and extraction calls.
	TierLite ModelTier = "lite"
	// TierStandard is for structured analysis with moderate reasoning.
	TierStandard ModelTier = "standard"
)

// Config holds the provider model configuration.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model for a tier, falling back to the lite model when
// the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierLite]
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return next
}
