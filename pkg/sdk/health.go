package dynoscan

import (
	"context"

	healthuc "github.com/kailas-cloud/dynoscan/internal/usecase/health"
)

// HealthStatus reports whether the engine behind the client answers.
type HealthStatus struct {
	Engine string            // "dynamodb" or "valkey"
	Status string            // "ok" or "error"
	Checks map[string]string // engine name -> "ok"/"error"
}

// Healthy reports whether every check passed.
func (h HealthStatus) Healthy() bool { return h.Status == string(healthuc.Healthy) }

// Health pings the engine once.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	return HealthStatus{
		Engine: c.engine.Name(),
		Status: string(report.Status),
		Checks: checks,
	}
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
