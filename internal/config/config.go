package config

// PlaceholderAPIKey is used when no Gemini API key is configured. Requests
// made with it fail at the Gemini API and surface as generation failures.
const PlaceholderAPIKey = "Your API KEY"

// DefaultModel is the Gemini model used when a request does not name one.
const DefaultModel = "gemini-2.5-flash-preview-05-20"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	CORS    CORSConfig    `mapstructure:"cors"    validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// IndexPath is the static front-end document served at GET /.
	IndexPath              string `mapstructure:"index_path"               validate:"required"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	DefaultModel string `mapstructure:"default_model"  validate:"required"`

	// MaxAttempts is the total number of calls made before giving up.
	MaxAttempts int `mapstructure:"max_attempts" validate:"gte=1"`
	// InitialDelayMillis is the sleep after the first failed attempt; it
	// doubles after each subsequent failure.
	InitialDelayMillis int `mapstructure:"initial_delay_ms" validate:"gte=0"`
	// RequestTimeoutSeconds bounds a single call to the Gemini API. Zero
	// means no client-side timeout.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// UsesPlaceholderKey reports whether no real API key was configured.
func (c LLMConfig) UsesPlaceholderKey() bool {
	return c.GeminiAPIKey == PlaceholderAPIKey
}

// CORSConfig controls cross-origin access to the relay.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
