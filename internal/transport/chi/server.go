package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain"
	"github.com/kailas-cloud/dynoscan/internal/transport/wire"
	healthuc "github.com/kailas-cloud/dynoscan/internal/usecase/health"
	scanuc "github.com/kailas-cloud/dynoscan/internal/usecase/scan"
	schemauc "github.com/kailas-cloud/dynoscan/internal/usecase/schema"
)

// maxBodyBytes bounds scan request bodies.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the schema and scan operations over HTTP.
type Server struct {
	schema        *schemauc.Service
	scan          *scanuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	schema *schemauc.Service,
	scan *scanuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		schema: schema,
		scan:   scan,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, wire.CodeBadRequest),
		sentinelHandler(domain.ErrEngine, http.StatusBadGateway, wire.CodeEngineError),
		engineErrorHandler,
	}
	return s
}

// DescribeSchema handles GET /api/v1/schema.
func (s *Server) DescribeSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, wire.SchemaResponse{Columns: s.schema.Describe()})
}

// ScanTable handles POST /api/v1/scan.
func (s *Server) ScanTable(w http.ResponseWriter, r *http.Request) {
	var req wire.ScanRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, wire.CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.runScan(w, r, req)
}

// ScanTableQuery handles GET /api/v1/scan. filters and start_key are JSON-encoded query values.
func (s *Server) ScanTableQuery(w http.ResponseWriter, r *http.Request) {
	req, err := scanRequestFromQuery(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.runScan(w, r, req)
}

func (s *Server) runScan(w http.ResponseWriter, r *http.Request, req wire.ScanRequest) {
	res, err := s.scan.Scan(r.Context(), req.ToDomain())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.ScanResponseFrom(res))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, wire.HealthResponseFrom(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func scanRequestFromQuery(r *http.Request) (wire.ScanRequest, error) {
	query := r.URL.Query()

	var (
		req      wire.ScanRequest
		filters  *string
		startKey *string
	)
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &req.Limit); err != nil {
		return req, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "filters", query, &filters); err != nil {
		return req, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "start_key", query, &startKey); err != nil {
		return req, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	if filters != nil && *filters != "" {
		if err := json.Unmarshal([]byte(*filters), &req.Filters); err != nil {
			return req, fmt.Errorf("%w: filters must be a JSON object: %w", domain.ErrInvalidRequest, err)
		}
	}
	if startKey != nil && *startKey != "" {
		if err := json.Unmarshal([]byte(*startKey), &req.StartKey); err != nil {
			return req, fmt.Errorf("%w: start_key must be a JSON object: %w", domain.ErrInvalidRequest, err)
		}
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code wire.ErrorCode, message string) {
	writeJSON(w, status, wire.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// Bad requests echo the cause; other sentinels expose only their own text.
func sentinelHandler(sentinel error, status int, code wire.ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		msg := sentinel.Error()
		if status == http.StatusBadRequest {
			msg = err.Error()
		}
		writeError(w, status, code, msg)
		return true
	}
}

// engineErrorHandler catches engine failures that were not tagged with domain.ErrEngine.
func engineErrorHandler(w http.ResponseWriter, err error) bool {
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		return false
	}
	writeError(w, http.StatusBadGateway, wire.CodeEngineError, domain.ErrEngine.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, wire.CodeInternalError, "internal error")
}
