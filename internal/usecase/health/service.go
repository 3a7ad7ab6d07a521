// Package health aggregates component health checks.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
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
	Status  Status
	Checks  map[string]CheckResult
	Entries int
}

// Service coordinates health checks.
type Service struct {
	kb EntryCounter
}

// New creates a Service.
func New(kb EntryCounter) *Service {
	return &Service{kb: kb}
}

// Check reports the service health. An empty knowledge base degrades the
// status but the service stays up: queries still resolve to no_match.
func (s *Service) Check(_ context.Context) Report {
	checks := make(map[string]CheckResult)
	entries := s.kb.Len()

	if entries > 0 {
		checks["knowledge_base"] = CheckOK
	} else {
		checks["knowledge_base"] = CheckError
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, Entries: entries}
}
