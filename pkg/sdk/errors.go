package dynoscan

import (
	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain"
)

// Sentinel errors re-exported from the domain and storage layers.
// Use errors.Is() to check.
var (
	ErrInvalidRequest = domain.ErrInvalidRequest
	ErrEngine         = domain.ErrEngine
	ErrConfig         = domain.ErrConfig
	ErrTableNotFound  = db.ErrTableNotFound
)
