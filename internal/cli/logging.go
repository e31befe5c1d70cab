package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/spf13/cobra"
)

func newLoggingCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logging",
		Short: "Inspect and change the server's logging level",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the server's logging configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			cfg, err := session.Logging.Get(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(cfg, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"Root level", cfg.RootLoggerLevel},
					{"Appenders", cfg.RootLoggerAppenders},
					{"File", cfg.FileAppenderLocation},
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set-level LEVEL",
		Short:     fmt.Sprintf("Set the root logging level (%s)", strings.Join(client.LoggerLevels, ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: client.LoggerLevels,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			if err := session.Logging.SetLevel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Logging level set to %s\n", strings.ToUpper(args[0]))
			return nil
		},
	})

	return cmd
}
