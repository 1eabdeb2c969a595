package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

// DBStatsCollector exposes connection-pool statistics from database/sql as
// Prometheus metrics. It reads a fresh sql.DBStats snapshot on every scrape,
// so gauge values are always current without a background sampler.
type DBStatsCollector struct {
	source func() sql.DBStats

	maxOpen           *prometheus.Desc
	open              *prometheus.Desc
	inUse             *prometheus.Desc
	idle              *prometheus.Desc
	waitCount         *prometheus.Desc
	waitDuration      *prometheus.Desc
	maxIdleClosed     *prometheus.Desc
	maxLifetimeClosed *prometheus.Desc
}

// NewDBStatsCollector creates a collector that reads pool statistics through
// source on every scrape. The component label distinguishes pools when a
// service runs more than one database client.
func NewDBStatsCollector(component string, source func() sql.DBStats) *DBStatsCollector {
	labels := prometheus.Labels{"component": component}
	return &DBStatsCollector{
		source:            source,
		maxOpen:           prometheus.NewDesc("db_pool_max_open_connections", "Maximum number of open connections to the database", nil, labels),
		open:              prometheus.NewDesc("db_pool_open_connections", "Number of established connections both in use and idle", nil, labels),
		inUse:             prometheus.NewDesc("db_pool_in_use_connections", "Number of connections currently in use", nil, labels),
		idle:              prometheus.NewDesc("db_pool_idle_connections", "Number of idle connections", nil, labels),
		waitCount:         prometheus.NewDesc("db_pool_wait_count_total", "Total number of connections waited for", nil, labels),
		waitDuration:      prometheus.NewDesc("db_pool_wait_duration_seconds_total", "Total time blocked waiting for a new connection", nil, labels),
		maxIdleClosed:     prometheus.NewDesc("db_pool_max_idle_closed_total", "Total number of connections closed due to SetMaxIdleConns", nil, labels),
		maxLifetimeClosed: prometheus.NewDesc("db_pool_max_lifetime_closed_total", "Total number of connections closed due to SetConnMaxLifetime", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *DBStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.maxOpen
	ch <- c.open
	ch <- c.inUse
	ch <- c.idle
	ch <- c.waitCount
	ch <- c.waitDuration
	ch <- c.maxIdleClosed
	ch <- c.maxLifetimeClosed
}

// Collect implements prometheus.Collector.
func (c *DBStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source()
	ch <- prometheus.MustNewConstMetric(c.maxOpen, prometheus.GaugeValue, float64(stats.MaxOpenConnections))
	ch <- prometheus.MustNewConstMetric(c.open, prometheus.GaugeValue, float64(stats.OpenConnections))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(stats.InUse))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(stats.Idle))
	ch <- prometheus.MustNewConstMetric(c.waitCount, prometheus.CounterValue, float64(stats.WaitCount))
	ch <- prometheus.MustNewConstMetric(c.waitDuration, prometheus.CounterValue, stats.WaitDuration.Seconds())
	ch <- prometheus.MustNewConstMetric(c.maxIdleClosed, prometheus.CounterValue, float64(stats.MaxIdleClosed))
	ch <- prometheus.MustNewConstMetric(c.maxLifetimeClosed, prometheus.CounterValue, float64(stats.MaxLifetimeClosed))
}

// RegisterDBStats registers a DBStatsCollector for the given pool source on
// this instance's registry.
//
// Example:
//
//	m.RegisterDBStats("postgres", db.Stats)
func (m *Metrics) RegisterDBStats(component string, source func() sql.DBStats) *DBStatsCollector {
	collector := NewDBStatsCollector(component, source)
	m.registerer.MustRegister(collector)
	return collector
}
