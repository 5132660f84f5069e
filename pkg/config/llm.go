package config

// LLMConfig maps model tiers to concrete models on the external LLM
// service, plus per-tier pricing used for budget accounting.
type LLMConfig struct {
	// Addr is the gRPC address of the LLM service.
	Addr string `yaml:"addr"`

	// Tiers maps tier → model parameters.
	Tiers map[ModelTier]LLMTierConfig `yaml:"tiers"`
}

// LLMTierConfig describes one model tier.
type LLMTierConfig struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`

	// USDPerMTokensIn/Out price the tier for budget accounting.
	USDPerMTokensIn  float64 `yaml:"usd_per_mtokens_in"`
	USDPerMTokensOut float64 `yaml:"usd_per_mtokens_out"`
}

// Cost prices a completion at this tier.
func (t LLMTierConfig) Cost(tokensIn, tokensOut int) float64 {
	return float64(tokensIn)*t.USDPerMTokensIn/1e6 + float64(tokensOut)*t.USDPerMTokensOut/1e6
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Addr: "localhost:50051",
		Tiers: map[ModelTier]LLMTierConfig{
			TierSmall:  {Model: "small-latest", MaxTokens: 4096, Temperature: 0.2, USDPerMTokensIn: 0.25, USDPerMTokensOut: 1.25},
			TierMedium: {Model: "medium-latest", MaxTokens: 8192, Temperature: 0.2, USDPerMTokensIn: 3, USDPerMTokensOut: 15},
			TierLarge:  {Model: "large-latest", MaxTokens: 16384, Temperature: 0.2, USDPerMTokensIn: 15, USDPerMTokensOut: 75},
		},
	}
}
