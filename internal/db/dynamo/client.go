package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kailas-cloud/dynoscan/internal/db"
)

// Compile-time check: Store implements db.Engine.
var _ db.Engine = (*Store)(nil)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "ap-northeast-2"

// API is the subset of the DynamoDB client the store calls.
type API interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(
		ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options),
	) (*dynamodb.DescribeTableOutput, error)
}

// Config holds connection parameters for a DynamoDB table.
type Config struct {
	Table    string
	Region   string
	Endpoint string // optional, e.g. http://localhost:8000 for DynamoDB Local
	PageSize int32  // optional ScanInput.Limit; 0 leaves paging to the service
}

// Store implements db.Engine over one DynamoDB table.
type Store struct {
	client   API
	table    string
	pageSize int32
}

// NewStore loads AWS credentials from the default chain and binds the table.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Table == "" {
		return nil, fmt.Errorf("table name is required")
	}
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Store{client: client, table: cfg.Table, pageSize: cfg.PageSize}, nil
}

// NewStoreForTest creates a Store with the provided client (test-only).
func NewStoreForTest(c API, table string, pageSize int32) *Store {
	return &Store{client: c, table: table, pageSize: pageSize}
}

// Name identifies the backend.
func (s *Store) Name() string { return "dynamodb" }

// Ping checks that the table exists and the credentials can read its metadata.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)})
	if err != nil {
		var rnf *types.ResourceNotFoundException
		if errors.As(err, &rnf) {
			return fmt.Errorf("%w: %s", db.ErrTableNotFound, s.table)
		}
		return &db.Error{Op: db.OpDescribeTable, Err: err}
	}
	return nil
}

// Close is a no-op: the SDK client owns no long-lived connections to release.
func (s *Store) Close() {}

// WaitForReady polls Ping until the table responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = s.Ping(ctx); lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, db.ErrTableNotFound) {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for table: %w", lastErr)
		case <-ticker.C:
		}
	}
}
