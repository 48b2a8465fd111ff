package completion

const defaultModel = "gpt-4o"

// Config holds completion provider initialization parameters. The API key is
// injected by the process glue (environment, .env); it is deliberately not
// part of the JSON config file.
type Config struct {
	Model  string `json:"model,omitempty"`
	APIKey string `json:"-"`
}

// DefaultConfig returns the default completion configuration.
func DefaultConfig() Config {
	return Config{Model: defaultModel}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Model != "" {
		c.Model = source.Model
	}
	if source.APIKey != "" {
		c.APIKey = source.APIKey
	}
}

// New creates a Completer from configuration. A missing API key still yields
// a usable value whose Configured method reports false.
func New(cfg *Config) (Completer, error) {
	return NewOpenAI(cfg.APIKey, cfg.Model), nil
}
