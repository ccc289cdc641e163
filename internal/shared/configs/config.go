package configs

// Config holds all configuration for the application.
type Config struct {
	Lookup  LookupConfig  `validate:"required"`
	Poll    PollConfig    `validate:"required"`
	Display DisplayConfig `validate:"required"`
	Log     LogConfig     `validate:"required"`
	Debug   DebugConfig
}

// LookupConfig holds the directory-service settings.
type LookupConfig struct {
	// Addresses are the normalized lookupd base URLs (scheme included).
	Addresses      []string `validate:"required,min=1"`
	TimeoutSeconds int      `validate:"required,min=1"`
}

// PollConfig holds the cycle loop settings.
type PollConfig struct {
	IntervalSeconds int `validate:"required,min=1"` // seconds between cycles
}

// DisplayConfig holds rendering thresholds and the trend window size.
type DisplayConfig struct {
	DepthWarnThreshold int64 `validate:"required,min=1"`
	DepthCritThreshold int64 `validate:"required,min=1,gtefield=DepthWarnThreshold"`
	HistoryLength      int   `validate:"required,min=1"`
}

// LogConfig holds logging configuration. File may be empty: the terminal UI
// owns stdout, so without a file the logger writes to io.Discard.
type LogConfig struct {
	Level string `validate:"required"`
	File  string
}

// DebugConfig holds the optional debug HTTP listener (healthz + Prometheus
// metrics). Empty Addr disables it.
type DebugConfig struct {
	Addr string
}
