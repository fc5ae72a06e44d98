package interview

// Config holds generation parameters shared by the interview services.
type Config struct {
	// MaxTokens is the response budget per model call.
	MaxTokens int

	// Temperature keeps responses focused. Screening questions
	// benefit from low variance.
	Temperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}
