package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModel(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.0-flash", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
}

func TestGetModel_UnknownTierFallsBackToLite(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, cfg.GetModel(TierLite), cfg.GetModel(ModelTier("huge")))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}

	assert.Equal(t, "", cfg.GetModel(TierLite))
}

func TestWithModel(t *testing.T) {
	cfg := DefaultConfig()
	custom := cfg.WithModel(TierLite, "gemini-override")

	assert.Equal(t, "gemini-override", custom.GetModel(TierLite))
	// Original config is not mutated
	assert.Equal(t, "gemini-2.0-flash", cfg.GetModel(TierLite))
	// Other tiers carried over
	assert.Equal(t, cfg.GetModel(TierStandard), custom.GetModel(TierStandard))
}
