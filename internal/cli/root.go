package cli

import (
	"context"

	"github.com/anmicius0/nexus-cli/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nexus-cli",
		Short: "Administer a Nexus repository manager",
		Long: `nexus-cli manages a Nexus repository manager over its REST API:
capabilities, repositories, users, server settings and, on Nexus Pro,
smart proxy, trusted keys and licensing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.initLogging(); err != nil {
				return err
			}
			utils.WithComponent("cli").Debug("Running command", zap.String(utils.FieldCommand, cmd.CommandPath()))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringP(flagConfig, "c", "", "config file (default is $HOME/.nexus_cli)")
	pf.String(flagOverrides, "", "comma separated key=value overrides; keys: url, repository, username, password")
	pf.Bool(flagSSLVerify, true, "verify the server's TLS certificate")
	pf.BoolP(flagVerbose, "v", false, "verbose logging")
	pf.StringP(flagOutput, "o", OutputText, "output format (text, json, yaml)")
	pf.String(flagLogFile, "", "append JSON logs to this file")
	for _, name := range []string{flagConfig, flagOverrides, flagSSLVerify, flagVerbose, flagOutput, flagLogFile} {
		_ = app.flags.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(newStatusCommand(app))
	root.AddCommand(newConfigCommand(app))
	root.AddCommand(newSettingsCommands(app)...)
	root.AddCommand(newCapabilityCommand(app))
	root.AddCommand(newRepositoryCommand(app))
	root.AddCommand(newGroupRepositoryCommand(app))
	root.AddCommand(newUserCommand(app))
	root.AddCommand(newLoggingCommand(app))
	root.AddCommand(newLicenseCommand(app))
	root.AddCommand(newTrustedKeyCommand(app))
	root.AddCommand(newSmartProxyCommand(app))
	root.AddCommand(newPubSubCommand(app))

	return root
}

// Run executes args against app and returns the process exit status.
func Run(ctx context.Context, app *App, args []string) int {
	defer app.Close()
	defer utils.Sync()

	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	root.SetIn(app.Stdin)

	if err := root.ExecuteContext(ctx); err != nil {
		app.printErr(err)
		return ExitCode(err)
	}
	return 0
}
