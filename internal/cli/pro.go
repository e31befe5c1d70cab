package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/anmicius0/nexus-cli/internal/service"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newLicenseCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Inspect and install the Nexus Pro license",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the installed license",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			info, err := pro.License(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(info, func(w io.Writer) error {
				rows := make([][2]string, 0, len(info))
				for _, k := range slices.Sorted(maps.Keys(info)) {
					rows = append(rows, [2]string{k, fmt.Sprint(info[k])})
				}
				return propertyTable(w, rows)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "install FILE",
		Short: "Install a license file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			license, err := afero.ReadFile(app.FS, args[0])
			if err != nil {
				return fmt.Errorf("read license file: %w", err)
			}
			if err := pro.InstallLicense(cmd.Context(), license); err != nil {
				return err
			}
			fmt.Fprintln(app.Stdout, "License installed")
			return nil
		},
	})

	return cmd
}

func newTrustedKeyCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trusted-key",
		Aliases: []string{"trusted-keys"},
		Short:   "Manage smart proxy trusted keys",
	}

	var certificate, description string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a trusted key from a PEM certificate file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			pem, err := afero.ReadFile(app.FS, certificate)
			if err != nil {
				return fmt.Errorf("read certificate: %w", err)
			}
			if err := pro.AddTrustedKey(cmd.Context(), string(pem), description); err != nil {
				return err
			}
			fmt.Fprintln(app.Stdout, "Trusted key added")
			return nil
		},
	}
	add.Flags().StringVar(&certificate, "certificate", "", "path to a PEM certificate")
	add.Flags().StringVar(&description, "description", "", "a description of the key")
	_ = add.MarkFlagRequired("certificate")
	_ = add.MarkFlagRequired("description")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a trusted key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			if err := pro.DeleteTrustedKey(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Deleted trusted key %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List trusted keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			keys, err := pro.TrustedKeys(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(keys, func(w io.Writer) error {
				rows := make([][]string, 0, len(keys))
				for _, k := range keys {
					rows = append(rows, []string{k.ID, k.Description})
				}
				return listTable(w, []string{"ID", "Description"}, rows)
			})
		},
	})

	return cmd
}

func newSmartProxyCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smart-proxy",
		Short: "Manage Nexus Pro smart proxy",
	}

	var host string
	var port int
	enable := &cobra.Command{
		Use:   "enable",
		Short: "Enable smart proxy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			if err := pro.EnableSmartProxy(cmd.Context(), host, port); err != nil {
				return err
			}
			fmt.Fprintln(app.Stdout, "Smart proxy enabled")
			return nil
		},
	}
	enable.Flags().StringVar(&host, "host", "", "host smart proxy listens on")
	enable.Flags().IntVar(&port, "port", 0, "port smart proxy listens on")
	cmd.AddCommand(enable)

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Disable smart proxy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			if err := pro.DisableSmartProxy(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(app.Stdout, "Smart proxy disabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "settings",
		Short: "Print smart proxy settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			settings, err := pro.SmartProxySettings(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(settings, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"Enabled", yesNo(settings.Enabled)},
					{"Host", settings.Host},
					{"Port", fmt.Sprint(settings.Port)},
				})
			})
		},
	})

	return cmd
}

func newPubSubCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pub-sub",
		Short: "Manage smart proxy publish/subscribe per repository",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get REPOSITORY",
		Short: "Print a repository's publish/subscribe state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pro, err := app.Pro(cmd.Context())
			if err != nil {
				return err
			}
			state, err := pro.PubSub(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.render(state, func(w io.Writer) error {
				return propertyTable(w, [][2]string{
					{"Repository", args[0]},
					{"Publish", yesNo(state.Publish)},
					{"Subscribe", yesNo(state.Subscribe)},
					{"Preemptive fetch", yesNo(state.PreemptiveFetch)},
				})
			})
		},
	})

	toggles := []struct {
		use  string
		flag service.PubSubFlag
		on   bool
	}{
		{"enable-publish", service.FlagPublish, true},
		{"disable-publish", service.FlagPublish, false},
		{"enable-subscribe", service.FlagSubscribe, true},
		{"disable-subscribe", service.FlagSubscribe, false},
	}
	for _, toggle := range toggles {
		cmd.AddCommand(&cobra.Command{
			Use:   toggle.use + " REPOSITORY",
			Short: fmt.Sprintf("Turn %s %s for a repository", toggle.flag, onOff(toggle.on)),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				pro, err := app.Pro(cmd.Context())
				if err != nil {
					return err
				}
				if _, err := service.NewPubSubToggle(pro).Set(cmd.Context(), args[0], toggle.flag, toggle.on); err != nil {
					return err
				}
				fmt.Fprintf(app.Stdout, "Turned %s %s for %s\n", toggle.flag, onOff(toggle.on), args[0])
				return nil
			},
		})
	}

	return cmd
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
