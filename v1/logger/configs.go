package logger

import "github.com/kelseyhightower/envconfig"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the logger component.
type Config struct {
	// Level sets the minimum level that is emitted: one of the Debug,
	// Info, Warning or Error constants. Unrecognized values fall back to
	// info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"ZAP_LOGGER_SERVICE_NAME"`

	// EnableTracing enables extraction of trace context into log fields.
	// When true, TraceFields returns the active trace/span IDs so they can be
	// attached to log entries emitted while handling a traced request.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ZAP_LOGGER_ENABLE_TRACING"`
}

// FromEnv populates a Config from environment variables using the envconfig
// struct tags declared on Config.
//
// Example:
//
//	cfg, err := logger.FromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logClient := logger.NewLoggerClient(cfg)
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
