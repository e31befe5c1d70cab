package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/spf13/cobra"
)

// ParseProperties accepts either "key=value,key=value" or a JSON array of
// {"key":..,"value":..} objects. Order is preserved.
func ParseProperties(value string) ([]client.Property, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(value, "[") {
		var props []client.Property
		if err := json.Unmarshal([]byte(value), &props); err != nil {
			return nil, fmt.Errorf("invalid properties JSON: %w", err)
		}
		return props, nil
	}
	var props []client.Property
	for _, raw := range strings.Split(value, ",") {
		pair := strings.TrimSpace(raw)
		if pair == "" {
			continue
		}
		key, val, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid property '%s': expected key=value", pair)
		}
		props = append(props, client.Property{Key: strings.TrimSpace(key), Value: strings.TrimSpace(val)})
	}
	return props, nil
}

type capabilityFlags struct {
	enabled    bool
	properties string
}

func (f *capabilityFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.enabled, "enabled", true, "whether the capability is enabled")
	cmd.Flags().StringVar(&f.properties, "properties", "", "key=value,... or a JSON array of properties")
}

func (f *capabilityFlags) input(cmd *cobra.Command, typeID string) (client.CapabilityInput, error) {
	props, err := ParseProperties(f.properties)
	if err != nil {
		return client.CapabilityInput{}, err
	}
	in := client.CapabilityInput{TypeID: typeID, Properties: props}
	if cmd.Flags().Changed("enabled") {
		enabled := f.enabled
		in.Enabled = &enabled
	}
	return in, nil
}

func newCapabilityCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "capability",
		Aliases: []string{"capabilities"},
		Short:   "Manage capabilities",
	}
	cmd.AddCommand(newCapabilityCreateCommand(app))
	cmd.AddCommand(newCapabilityUpdateCommand(app))
	cmd.AddCommand(newCapabilityDeleteCommand(app))
	cmd.AddCommand(newCapabilityGetCommand(app))
	cmd.AddCommand(newCapabilityListCommand(app))
	return cmd
}

func newCapabilityCreateCommand(app *App) *cobra.Command {
	var flags capabilityFlags
	cmd := &cobra.Command{
		Use:   "create TYPE",
		Short: "Create a capability of the given type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input(cmd, args[0])
			if err != nil {
				return err
			}
			session, err := app.Session()
			if err != nil {
				return err
			}
			id, err := session.Capabilities.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Created capability %s\n", id)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newCapabilityUpdateCommand(app *App) *cobra.Command {
	var flags capabilityFlags
	var typeID string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace the capability with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input(cmd, typeID)
			if err != nil {
				return err
			}
			session, err := app.Session()
			if err != nil {
				return err
			}
			id, err := session.Capabilities.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Updated capability %s\n", id)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&typeID, "type", "", "the capability type id")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newCapabilityDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete the capability with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			if err := session.Capabilities.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Deleted capability %s\n", args[0])
			return nil
		},
	}
}

func newCapabilityGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Print the capability with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			capability, err := session.Capabilities.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.render(capability, func(w io.Writer) error {
				rows := [][2]string{
					{"ID", capability.Capability.ID},
					{"Type", capability.Capability.TypeID},
					{"Enabled", yesNo(capability.Capability.Enabled)},
					{"Active", yesNo(capability.Active)},
				}
				for _, p := range capability.Capability.Properties {
					rows = append(rows, [2]string{p.Key, p.Value})
				}
				return propertyTable(w, rows)
			})
		},
	}
}

func newCapabilityListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			capabilities, err := session.Capabilities.List(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(capabilities, func(w io.Writer) error {
				rows := make([][]string, 0, len(capabilities))
				for _, c := range capabilities {
					rows = append(rows, []string{c.Capability.ID, c.Capability.TypeID, yesNo(c.Capability.Enabled), yesNo(c.Active)})
				}
				return listTable(w, []string{"ID", "Type", "Enabled", "Active"}, rows)
			})
		},
	}
}
