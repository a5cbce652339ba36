package db

import "errors"

var (
	// ErrTableNotFound signals that the configured table does not exist.
	ErrTableNotFound = errors.New("db: table not found")
	// ErrInvalidCursor signals a start key the engine did not produce.
	ErrInvalidCursor = errors.New("db: invalid cursor")
)

// Op constants name the engine call that failed.
const (
	OpScan          = "Scan"
	OpDescribeTable = "DescribeTable"
	OpKeyScan       = "SCAN"
	OpGet           = "GET"
	OpPing          = "PING"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
