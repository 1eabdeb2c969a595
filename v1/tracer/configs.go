package tracer

import "github.com/kelseyhightower/envconfig"

// Config defines the configuration for the tracer component.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment recorded on every span resource
	// (for example "production" or "staging").
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport controls whether spans are exported over OTLP/HTTP.
	// When false the provider still creates spans (useful for log correlation)
	// but nothing leaves the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}

// FromEnv populates a Config from environment variables using the envconfig
// struct tags declared on Config.
//
// The OTLP endpoint itself is configured through the standard OpenTelemetry
// environment variables (OTEL_EXPORTER_OTLP_ENDPOINT and friends), which the
// exporter reads on its own.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
