package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/devzap/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.DiagnoseService.Prompter = NewPrompter(nil, nil)
	container.SetupService.In = os.Stdin
	container.SetupService.Out = os.Stdout

	root := &cobra.Command{
		Use:   "devzap",
		Short: "DevZap - AI-assisted error diagnosis and remediation",
		Long: "DevZap forwards error logs and tool-installation questions to the\n" +
			"OpenRouter completion API and prints or, after confirmation, executes\n" +
			"the suggested remediation command.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSetupCommand(container))
	root.AddCommand(newAnalyzeCommand(container))
	root.AddCommand(newInstallCommand(container))
	root.AddCommand(newMonitorCommand(container))
	root.AddCommand(newListModelsCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}
