package tomography

// Config controls how a Basis is assembled.
type Config struct {
	// Strict rejects a capability that was supplied but is incomplete,
	// instead of leaving it disabled.
	Strict bool
	// Verbose logs construction and registration through errnie.
	Verbose bool
}

func NewConfig() *Config {
	return &Config{
		Strict:  false,
		Verbose: false,
	}
}
