package cli

import (
	"fmt"

	"github.com/anmicius0/nexus-cli/internal/settings"
	"github.com/spf13/cobra"
)

func newSettingsCommands(app *App) []*cobra.Command {
	return []*cobra.Command{
		newSettingsCommand(app, "global-settings", "Manage global server settings", settings.GlobalSettings),
		newSettingsCommand(app, "ldap-conn", "Manage OSS LDAP connection settings", settings.LDAPConnection),
		newSettingsCommand(app, "ldap-user-group", "Manage OSS LDAP user and group settings", settings.LDAPUserGroup),
	}
}

func newSettingsCommand(app *App, use, short string, kind settings.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: fmt.Sprintf("Print the current settings and save them to %s", kind.FileName),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sync, err := app.Synchronizer(kind)
			if err != nil {
				return err
			}
			blob, err := sync.Get(cmd.Context())
			if err != nil {
				return err
			}
			return app.renderBlob(blob)
		},
	})

	var jsonBlob string
	upload := &cobra.Command{
		Use:   "upload",
		Short: fmt.Sprintf("Upload %s, or the JSON given with --json", kind.FileName),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sync, err := app.Synchronizer(kind)
			if err != nil {
				return err
			}
			var blob []byte
			if cmd.Flags().Changed("json") {
				blob = []byte(jsonBlob)
			}
			if err := sync.Upload(cmd.Context(), blob); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Uploaded %s settings\n", kind.Name)
			return nil
		},
	}
	upload.Flags().StringVar(&jsonBlob, "json", "", "a JSON document to upload instead of the local file")
	cmd.AddCommand(upload)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Re-apply the server's current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sync, err := app.Synchronizer(kind)
			if err != nil {
				return err
			}
			if err := sync.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Reset %s settings\n", kind.Name)
			return nil
		},
	})

	return cmd
}
