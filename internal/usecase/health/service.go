package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the engine is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service checks the table engine.
type Service struct {
	engine EnginePinger
	name   string
}

// New creates a Service; name keys the engine entry in the report.
func New(engine EnginePinger, name string) *Service {
	return &Service{engine: engine, name: name}
}

// Check pings the engine. A scan tool without its table cannot serve
// anything, so a failed ping makes the whole report unhealthy.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{s.name: CheckOK}
	status := Healthy

	if err := s.engine.Ping(ctx); err != nil {
		checks[s.name] = CheckError
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}
