package llm

import "os"

// Config selects and configures a provider. All fields can be filled from
// CERTPREP_LLM_* environment variables.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	APIKey  string
	Model   string // friendly alias or literal model id
	BaseURL string // OpenAI-compatible endpoints only
}

// ConfigFromEnv reads provider settings from the environment.
// CERTPREP_LLM_PROVIDER defaults to "anthropic".
func ConfigFromEnv() Config {
	cfg := Config{
		Provider: os.Getenv("CERTPREP_LLM_PROVIDER"),
		APIKey:   os.Getenv("CERTPREP_LLM_API_KEY"),
		Model:    os.Getenv("CERTPREP_LLM_MODEL"),
		BaseURL:  os.Getenv("CERTPREP_LLM_BASE_URL"),
	}
	if cfg.Provider == "" {
		cfg.Provider = "anthropic"
	}
	return cfg
}
