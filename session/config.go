package session

// DefaultWindow bounds the number of non-protocol turns retained per session
// when no window is configured.
const DefaultWindow = 24

// DefaultKey is used when a caller omits the session key.
const DefaultKey = "default"

// Config holds session store initialization parameters.
type Config struct {
	// Window is the maximum number of non-protocol turns retained in a
	// session log and sent to the completion provider.
	Window int `json:"window,omitempty"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{Window: DefaultWindow}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Window > 0 {
		c.Window = source.Window
	}
}
