package services

import (
	"context"
	"time"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/ports"
)

// DoctorService diagnoses the local environment: config, credential, API
// reachability, history store.
type DoctorService struct {
	ConfigStore ports.ConfigStore
	Client      ports.CompletionClient
	History     ports.HistoryStore
}

// Run executes all checks. Findings are reported, not fatal.
func (s *DoctorService) Run(ctx context.Context) (domain.HealthReport, error) {
	var report domain.HealthReport

	cfg, err := s.ConfigStore.Load(ctx)
	if err != nil {
		report.Checks = append(report.Checks, domain.HealthCheck{
			Name:    "config",
			Status:  domain.HealthFail,
			Details: err.Error(),
		})
		return report, nil
	}
	report.Checks = append(report.Checks, domain.HealthCheck{
		Name:    "config",
		Status:  domain.HealthOK,
		Details: s.ConfigStore.Path(),
	})

	credential, err := cfg.Credential()
	if err != nil {
		report.Checks = append(report.Checks, domain.HealthCheck{
			Name:    "credential",
			Status:  domain.HealthFail,
			Details: "missing: set " + domain.EnvAPIKey + " or run 'devzap setup'",
		})
		return report, nil
	}
	report.Checks = append(report.Checks, domain.HealthCheck{
		Name:    "credential",
		Status:  domain.HealthOK,
		Details: "resolved",
	})

	report.Checks = append(report.Checks, s.checkAPI(ctx, credential))

	if s.History != nil {
		report.Checks = append(report.Checks, domain.HealthCheck{
			Name:    "history",
			Status:  domain.HealthOK,
			Details: s.History.Path(),
		})
	}

	return report, nil
}

func (s *DoctorService) checkAPI(ctx context.Context, credential string) domain.HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.Client.ValidateKey(ctx, credential); err != nil {
		status := domain.HealthFail
		if ce, ok := domain.AsCompletionError(err); ok && ce.Kind == domain.CompletionErrNetwork {
			status = domain.HealthWarn
		}
		return domain.HealthCheck{Name: "api", Status: status, Details: err.Error()}
	}
	return domain.HealthCheck{
		Name:    "api",
		Status:  domain.HealthOK,
		Details: "key accepted by provider",
	}
}
