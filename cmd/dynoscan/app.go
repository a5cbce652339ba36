package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dynoscan/internal/config"
	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/db/dynamo"
	dbValkey "github.com/kailas-cloud/dynoscan/internal/db/valkey"
	"github.com/kailas-cloud/dynoscan/internal/domain"
	domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"
	logpkg "github.com/kailas-cloud/dynoscan/internal/logger"
	healthuc "github.com/kailas-cloud/dynoscan/internal/usecase/health"
	scanuc "github.com/kailas-cloud/dynoscan/internal/usecase/scan"
	schemauc "github.com/kailas-cloud/dynoscan/internal/usecase/schema"
	"github.com/kailas-cloud/dynoscan/internal/version"
)

// engineOpener connects the configured storage engine.
type engineOpener func(ctx context.Context, cfg config.Config) (db.Engine, error)

// app is the composition root shared by the serving and CLI commands.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	engine db.Engine
	schema *schemauc.Service
	scan   *scanuc.Service
	health *healthuc.Service
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load(o.env)
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", domain.ErrConfig, err)
	}
	return cfg, nil
}

// bootstrap loads config, builds the logger, connects the engine and wires the use cases.
func (o *rootOptions) bootstrap(ctx context.Context) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logpkg.NewLogger(o.env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: create logger: %w", domain.ErrConfig, err)
	}

	catalog, err := loadCatalog(cfg.Table.SchemaFile)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting dynoscan",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", o.env),
		zap.String("engine", cfg.Engine.Driver),
		zap.String("table", cfg.Table.Name),
		zap.Int("columns", catalog.Len()),
	)

	engine, err := o.openEngine(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s engine: %w", cfg.Engine.Driver, err)
	}

	timeout := time.Duration(cfg.Engine.ReadinessTimeout) * time.Second
	if err := engine.WaitForReady(ctx, timeout); err != nil {
		engine.Close()
		return nil, fmt.Errorf("%s not ready: %w", engine.Name(), err)
	}
	logger.Info("Connected to engine", zap.String("engine", engine.Name()))

	scanner := scanuc.NewInstrumentedScanner(engine, engine.Name(), logger)

	return &app{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		schema: schemauc.New(catalog),
		scan:   scanuc.New(scanner),
		health: healthuc.New(engine, engine.Name()),
	}, nil
}

func (a *app) Close() {
	a.engine.Close()
	_ = a.logger.Sync()
}

// openEngine is the production engineOpener.
func openEngine(ctx context.Context, cfg config.Config) (db.Engine, error) {
	switch cfg.Engine.Driver {
	case config.DriverValkey, config.DriverRedis:
		store, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:     cfg.Engine.Addrs,
			Password:  cfg.Engine.Password,
			KeyPrefix: cfg.Storage.KeyPrefix,
			PageSize:  cfg.Engine.PageSize,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverDynamoDB:
		store, err := dynamo.NewStore(ctx, dynamo.Config{
			Table:    cfg.Table.Name,
			Region:   cfg.Engine.Region,
			Endpoint: cfg.Engine.Endpoint,
			PageSize: int32(cfg.Engine.PageSize), //nolint:gosec // bounded by config validation
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: unknown engine driver %q", domain.ErrConfig, cfg.Engine.Driver)
	}
}

// loadCatalog reads the schema file, or returns the built-in catalog when path is empty.
func loadCatalog(path string) (*domschema.Catalog, error) {
	if path == "" {
		return domschema.Builtin(), nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read schema file: %w", domain.ErrConfig, err)
	}
	catalog, err := domschema.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfig, path, err)
	}
	return catalog, nil
}
