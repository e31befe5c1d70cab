package cli

import (
	"io"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/spf13/cobra"
)

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print information about the Nexus instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Transport()
			if err != nil {
				return err
			}
			session, err := client.Connect(cmd.Context(), t)
			if err != nil {
				return err
			}
			status := session.Status()
			return app.render(status, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"Application", status.AppName},
					{"Version", status.Version},
					{"Edition", status.EditionLong},
					{"State", status.State},
					{"Started", status.StartedAt},
					{"Base URL", status.BaseURL},
					{"Pro features", yesNo(session.Edition() == client.EditionExtended)},
				})
			})
		},
	}
}

// configView is the printable configuration; the password is masked.
type configView struct {
	URL         string `json:"url" yaml:"url"`
	Repository  string `json:"repository" yaml:"repository"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	SSLVerify   bool   `json:"ssl_verify" yaml:"ssl_verify"`
	SettingsDir string `json:"settings_dir" yaml:"settings_dir"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
}

const masked = "***"

func newConfigCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			view := configView{
				URL:         cfg.URL,
				Repository:  cfg.Repository,
				Username:    cfg.Username,
				Password:    masked,
				SSLVerify:   cfg.SSLVerify,
				SettingsDir: cfg.SettingsDir,
				Source:      cfg.Source,
			}
			return app.render(view, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"URL", view.URL},
					{"Repository", view.Repository},
					{"Username", view.Username},
					{"Password", view.Password},
					{"SSL verify", yesNo(view.SSLVerify)},
					{"Settings dir", view.SettingsDir},
					{"Config file", view.Source},
				})
			})
		},
	}
}
