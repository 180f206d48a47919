package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	EventLog EventLogConfig `mapstructure:"event_log"`
}

// ServerConfig holds serve-mode HTTP server configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// EventLogConfig holds the events file configuration.
// Path is optional: the CLI positional argument overrides it, and when both
// are empty the install-relative default path is used.
type EventLogConfig struct {
	Path string `mapstructure:"path"`
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      10,
			IdleTimeout:       60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
