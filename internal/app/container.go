package app

import (
	"context"

	"github.com/doeshing/devzap/internal/infrastructure/config"
	"github.com/doeshing/devzap/internal/infrastructure/executor"
	"github.com/doeshing/devzap/internal/infrastructure/history"
	"github.com/doeshing/devzap/internal/infrastructure/openrouter"
	"github.com/doeshing/devzap/internal/infrastructure/security"
	"github.com/doeshing/devzap/internal/infrastructure/sysinfo"
	"github.com/doeshing/devzap/internal/pkg/logger"
	"github.com/doeshing/devzap/internal/ports"
	"github.com/doeshing/devzap/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	DiagnoseService *services.DiagnoseService
	SetupService    *services.SetupService
	DoctorService   *services.DoctorService
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	Client          ports.CompletionClient
	HistoryStore    ports.HistoryStore
	Logger          ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	client := openrouter.NewClient("")
	historyStore := history.NewSQLiteStore("")

	guardrail, err := security.NewGuardrail(cfg.Security.RulesFile)
	if err != nil {
		guardrail, err = security.NewGuardrail("")
		if err != nil {
			return nil, err
		}
	}

	diagnoseService := &services.DiagnoseService{
		ConfigProvider: cfgLoader,
		Client:         client,
		Host:           sysinfo.NewCollector(),
		Security:       guardrail,
		Executor:       executor.NewLocalExecutor(cfg.Execution.Shell),
		History:        historyStore,
		Logger:         log,
	}

	setupService := &services.SetupService{
		ConfigStore: cfgLoader,
		Client:      client,
		Logger:      log,
	}

	doctorService := &services.DoctorService{
		ConfigStore: cfgLoader,
		Client:      client,
		History:     historyStore,
	}

	return &Container{
		DiagnoseService: diagnoseService,
		SetupService:    setupService,
		DoctorService:   doctorService,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		Client:          client,
		HistoryStore:    historyStore,
		Logger:          log,
	}, nil
}
