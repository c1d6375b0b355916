package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/devzap/internal/app"
	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/infrastructure/logtail"
)

// diagnosisFlags are shared by analyze, install, and monitor.
type diagnosisFlags struct {
	auto    bool
	model   string
	timeout time.Duration
}

func (f *diagnosisFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.auto, "auto", false, "Execute the suggested command without confirmation")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "Override model ID (default from config)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", domain.DefaultRequestTimeout, "Override request timeout")
}

func (f *diagnosisFlags) context(parent context.Context) (context.Context, context.CancelFunc) {
	if f.timeout > 0 {
		return context.WithTimeout(parent, f.timeout)
	}
	return context.WithCancel(parent)
}

func newSetupCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively collect and store the API credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			return container.SetupService.Run(cmd.Context())
		},
	}
}

func newAnalyzeCommand(container *app.Container) *cobra.Command {
	var flags diagnosisFlags
	var file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Diagnose an error output file and suggest a fix",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			ctx, cancel := flags.context(cmd.Context())
			defer cancel()

			resp, err := container.DiagnoseService.Run(domain.DiagnosisRequest{
				Context:       ctx,
				Kind:          domain.TaskAnalyze,
				Input:         string(data),
				Source:        file,
				ModelOverride: flags.model,
				AutoApprove:   flags.auto,
			})
			if err != nil {
				return err
			}
			RenderResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the file containing the error output")
	flags.register(cmd)
	return cmd
}

func newInstallCommand(container *app.Container) *cobra.Command {
	var flags diagnosisFlags
	var tool string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Get installation guidance for a tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tool == "" {
				return fmt.Errorf("--tool is required")
			}

			ctx, cancel := flags.context(cmd.Context())
			defer cancel()

			resp, err := container.DiagnoseService.Run(domain.DiagnosisRequest{
				Context:       ctx,
				Kind:          domain.TaskInstall,
				Input:         tool,
				Source:        tool,
				ModelOverride: flags.model,
				AutoApprove:   flags.auto,
			})
			if err != nil {
				return err
			}
			RenderResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Name of the tool to install")
	flags.register(cmd)
	return cmd
}

func newMonitorCommand(container *app.Container) *cobra.Command {
	var flags diagnosisFlags
	var logFile string

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Inspect the tail of a log file and suggest a remedy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				return fmt.Errorf("--log-file is required")
			}

			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return err
			}

			lines, err := logtail.Tail(logFile, cfg.Monitoring.TailLines)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return fmt.Errorf("log file %s is empty", logFile)
			}

			ctx, cancel := flags.context(cmd.Context())
			defer cancel()

			resp, err := container.DiagnoseService.Run(domain.DiagnosisRequest{
				Context:       ctx,
				Kind:          domain.TaskMonitor,
				Input:         strings.Join(lines, "\n"),
				Source:        logFile,
				Flagged:       logtail.Grep(lines, cfg.Monitoring.LogPatterns),
				ModelOverride: flags.model,
				AutoApprove:   flags.auto,
			})
			if err != nil {
				return err
			}
			RenderResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Path to the log file to inspect")
	flags.register(cmd)
	return cmd
}

func newListModelsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list-models",
		Short: "Print available model identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return err
			}
			credential, err := cfg.Credential()
			if err != nil {
				return err
			}

			models, err := container.Client.ListModels(cmd.Context(), credential)
			if err != nil {
				return err
			}
			for _, model := range models {
				fmt.Fprintln(cmd.OutOrStdout(), model.ID)
			}
			return nil
		},
	}
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			renderDoctorReport(cmd.OutOrStdout(), report)
			return err
		},
	}
}
