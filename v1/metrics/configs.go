package metrics

import "github.com/kelseyhightower/envconfig"

// DefaultMetricsAddress is used when no listen address is configured.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration for the metrics component.
type Config struct {
	// Address is the listen address of the /metrics HTTP server, for
	// example ":9090" or "127.0.0.1:9100". Default: ":9090"
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process, and
	// build info collectors alongside the application metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS" default:"true"`

	// Namespace prefixes every metric registered through this instance,
	// e.g. Namespace "billing" yields "billing_db_operations_total".
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is attached to every metric as the "service" label so
	// scrapes from different services stay distinguishable.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// FromEnv populates a Config from environment variables using the envconfig
// struct tags declared on Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}
	return cfg, nil
}
