package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
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
	Status  Status
	Checks  map[string]CheckResult
	Records int
}

// Service coordinates health checks.
type Service struct {
	repo RecordCounter
}

// New creates a Service.
func New(repo RecordCounter) *Service {
	return &Service{repo: repo}
}

// Check reports whether the paper repository is populated.
func (s *Service) Check(_ context.Context) Report {
	checks := make(map[string]CheckResult)

	records := s.repo.Count()
	if records > 0 {
		checks["repository"] = CheckOK
	} else {
		checks["repository"] = CheckError
	}

	return Report{Status: aggregate(checks), Checks: checks, Records: records}
}

func aggregate(checks map[string]CheckResult) Status {
	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}
	switch {
	case failed == 0:
		return Healthy
	case failed == len(checks):
		return Unhealthy
	default:
		return Degraded
	}
}
