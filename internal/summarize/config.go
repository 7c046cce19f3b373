package summarize

// Config holds generation settings for the three LLM calls.
type Config struct {
	SummaryMaxTokens  int
	FeedbackMaxTokens int
	GlossMaxTokens    int

	SummaryTemperature  float64
	FeedbackTemperature float64
	GlossTemperature    float64
}

// DefaultConfig returns the settings the prompts were tuned with.
func DefaultConfig() Config {
	return Config{
		SummaryMaxTokens:    200,
		FeedbackMaxTokens:   1500,
		GlossMaxTokens:      300,
		SummaryTemperature:  0.3,
		FeedbackTemperature: 0.2,
		GlossTemperature:    0.3,
	}
}
