package dynoscan

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "dynamodb", "valkey" or "redis"
	table    string
	region   string
	endpoint string
	addrs    []string
	password string

	keyPrefix        string
	pageSize         int
	columns          map[string]string
	readinessTimeout time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithDynamoDB scans the given DynamoDB table. Credentials come from the AWS default chain.
func WithDynamoDB(table, region string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "dynamodb"
		c.table = table
		c.region = region
	})
}

// WithEndpoint overrides the DynamoDB endpoint, e.g. http://localhost:8000 for DynamoDB Local.
func WithEndpoint(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.endpoint = url
	})
}

// WithValkey scans JSON records stored as string keys in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis scans JSON records stored as string keys in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix sets the Valkey/Redis key prefix that holds the table's records.
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithPageSize sets the engine's own page size (DynamoDB Limit, SCAN COUNT).
// It bounds records read per call, not items returned.
func WithPageSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.pageSize = n
	})
}

// WithColumns replaces the built-in schema catalog with name -> description.
func WithColumns(columns map[string]string) Option {
	return optionFunc(func(c *clientConfig) {
		c.columns = columns
	})
}

// WithReadinessTimeout bounds the initial connectivity check. Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
