package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultStrategy is the merge strategy used by imports that don't specify one.
	DefaultStrategy string `mapstructure:"default_strategy" default:"merge"`
}

const (
	StrategyReplace = "replace"
	StrategyMerge   = "merge"
	StrategyAppend  = "append"
)

// IsValidStrategy checks if the configured default merge strategy is valid.
func (c Config) IsValidStrategy() bool {
	switch c.DefaultStrategy {
	case StrategyReplace, StrategyMerge, StrategyAppend:
		return true
	default:
		return false
	}
}
