package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/service"
	"github.com/spf13/cobra"
)

func newRepositoryCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repository",
		Aliases: []string{"repo"},
		Short:   "Manage hosted and proxy repositories",
	}

	var in client.RepositoryInput
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a hosted repository, or a proxy with --proxy --url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			in.Name = args[0]
			id, err := session.Repositories.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Created repository %s\n", id)
			return nil
		},
	}
	create.Flags().StringVar(&in.ID, "id", "", "repository id (derived from the name by default)")
	create.Flags().StringVar(&in.Policy, "policy", client.DefaultPolicy, "repository policy (RELEASE or SNAPSHOT)")
	create.Flags().StringVar(&in.Provider, "provider", client.DefaultProvider, "repository provider")
	create.Flags().BoolVar(&in.Proxy, "proxy", false, "create a proxy repository")
	create.Flags().StringVar(&in.URL, "url", "", "remote URL for a proxy repository")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			if err := session.Repositories.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Deleted repository %s\n", client.SanitizeID(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Print a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			repo, err := session.Repositories.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.render(repo, func(w io.Writer) error {
				rows := [][2]string{
					{"ID", repo.ID},
					{"Name", repo.Name},
					{"Type", repo.RepoType},
					{"Policy", repo.RepoPolicy},
					{"Provider", repo.Provider},
				}
				if repo.RemoteStorage != nil {
					rows = append(rows, [2]string{"Remote URL", repo.RemoteStorage.RemoteStorageURL})
				}
				return propertyTable(w, rows)
			})
		},
	})

	return cmd
}

func newGroupRepositoryCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group-repository",
		Aliases: []string{"group"},
		Short:   "Manage repository groups",
	}

	var id, provider string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an empty repository group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			groupID, err := session.Groups.Create(cmd.Context(), args[0], id, provider)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Created group repository %s\n", groupID)
			return nil
		},
	}
	create.Flags().StringVar(&id, "id", "", "group id (derived from the name by default)")
	create.Flags().StringVar(&provider, "provider", client.DefaultProvider, "group provider")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Print a repository group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			group, err := session.Groups.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.renderGroup(group)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add GROUP REPOSITORY...",
		Short: "Add repositories to a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			group, err := service.NewGroupMembership(session.Groups).Add(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return app.renderGroup(group)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove GROUP REPOSITORY...",
		Short: "Remove repositories from a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			group, err := service.NewGroupMembership(session.Groups).Remove(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return app.renderGroup(group)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a repository group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			if err := session.Groups.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Deleted group repository %s\n", client.SanitizeID(args[0]))
			return nil
		},
	})

	return cmd
}

func (a *App) renderGroup(group *client.GroupRepository) error {
	return a.render(group, func(w io.Writer) error {
		ids := make([]string, 0, len(group.Repositories))
		for _, m := range group.Repositories {
			ids = append(ids, m.ID)
		}
		return propertyTable(w, [][2]string{
			{"ID", group.ID},
			{"Name", group.Name},
			{"Provider", group.Provider},
			{"Members", strings.Join(ids, ", ")},
		})
	})
}
