package dynoscan

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/db/dynamo"
	dbValkey "github.com/kailas-cloud/dynoscan/internal/db/valkey"
	"github.com/kailas-cloud/dynoscan/internal/domain"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/request"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/result"
	domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"
	healthuc "github.com/kailas-cloud/dynoscan/internal/usecase/health"
	scanuc "github.com/kailas-cloud/dynoscan/internal/usecase/scan"
	schemauc "github.com/kailas-cloud/dynoscan/internal/usecase/schema"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped out in tests.
type schemaUseCase interface {
	Fields() []domschema.Field
}

type scanUseCase interface {
	Scan(ctx context.Context, req request.Request) (result.Result, error)
}

// Client is the dynoscan SDK entry point.
type Client struct {
	engine    db.Engine
	schemaSvc schemaUseCase
	scanSvc   scanUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a dynoscan Client and connects to the engine.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{readinessTimeout: defaultReadinessTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	catalog, err := buildCatalog(cfg.columns)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	engine, err := createEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := engine.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		engine.Close()
		return nil, fmt.Errorf("dynoscan: %s not ready: %w", engine.Name(), err)
	}

	return wireClient(engine, catalog, obs), nil
}

func createEngine(ctx context.Context, cfg *clientConfig) (db.Engine, error) {
	switch cfg.driver {
	case "dynamodb":
		if cfg.table == "" {
			return nil, fmt.Errorf("%w: dynoscan: table name required", domain.ErrConfig)
		}
		s, err := dynamo.NewStore(ctx, dynamo.Config{
			Table:    cfg.table,
			Region:   cfg.region,
			Endpoint: cfg.endpoint,
			PageSize: int32(cfg.pageSize), //nolint:gosec // caller-supplied page size
		})
		if err != nil {
			return nil, fmt.Errorf("dynoscan: create dynamodb store: %w", err)
		}
		return s, nil
	case "valkey", "redis":
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return nil, fmt.Errorf("%w: dynoscan: %s address required", domain.ErrConfig, cfg.driver)
		}
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:     cfg.addrs,
			Password:  cfg.password,
			KeyPrefix: cfg.keyPrefix,
			PageSize:  cfg.pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("dynoscan: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	case "":
		return nil, errors.New("dynoscan: engine required (use WithDynamoDB, WithValkey or WithRedis)")
	default:
		return nil, fmt.Errorf("%w: dynoscan: unknown driver %q", domain.ErrConfig, cfg.driver)
	}
}

func buildCatalog(columns map[string]string) (*domschema.Catalog, error) {
	if len(columns) == 0 {
		return domschema.Builtin(), nil
	}
	fields := make([]domschema.Field, 0, len(columns))
	for name, desc := range columns {
		f, err := domschema.NewField(name, desc)
		if err != nil {
			return nil, fmt.Errorf("%w: dynoscan: %w", domain.ErrConfig, err)
		}
		fields = append(fields, f)
	}
	catalog, err := domschema.NewCatalog(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: dynoscan: %w", domain.ErrConfig, err)
	}
	return catalog, nil
}

func wireClient(engine db.Engine, catalog *domschema.Catalog, obs *observer) *Client {
	return &Client{
		engine:    engine,
		schemaSvc: schemauc.New(catalog),
		scanSvc:   scanuc.New(engine),
		healthSvc: healthuc.New(engine, engine.Name()),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.engine != nil {
		c.engine.Close()
	}
}

// Ping checks engine connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.engine.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Schema returns the table's columns ordered by name.
func (c *Client) Schema() []Column {
	fields := c.schemaSvc.Fields()
	cols := make([]Column, len(fields))
	for i, f := range fields {
		cols[i] = Column{Name: f.Name(), Description: f.Description()}
	}
	return cols
}

// Scan reads one page of matching items.
func (c *Client) Scan(ctx context.Context, req ScanRequest) (page *ScanPage, err error) {
	start := time.Now()
	defer func() {
		if page != nil {
			c.obs.observe("scan", start, err, "count", page.Count, "scanned", page.ScannedCount)
			return
		}
		c.obs.observe("scan", start, err)
	}()

	res, err := c.scanSvc.Scan(ctx, req.toDomain())
	if err != nil {
		return nil, err
	}
	return pageFromDomain(res), nil
}

// Pages scans page by page, following LastEvaluatedKey until the table is
// exhausted, the consumer stops, or an error occurs. An error is yielded once
// and ends the sequence.
func (c *Client) Pages(ctx context.Context, req ScanRequest) iter.Seq2[*ScanPage, error] {
	return func(yield func(*ScanPage, error) bool) {
		for {
			page, err := c.Scan(ctx, req)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(page, nil) || !page.HasMore() {
				return
			}
			req.StartKey = page.LastEvaluatedKey
		}
	}
}
