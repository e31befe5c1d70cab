package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/service"
	"github.com/spf13/cobra"
)

func splitList(value string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func userStatus(enabled bool) string {
	if enabled {
		return "active"
	}
	return "disabled"
}

func newUserCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage users",
	}
	cmd.AddCommand(newUserListCommand(app))
	cmd.AddCommand(newUserCreateCommand(app))
	cmd.AddCommand(newUserUpdateCommand(app))
	cmd.AddCommand(newUserDeleteCommand(app))
	cmd.AddCommand(newUserChangePasswordCommand(app))
	return cmd
}

func newUserListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			users, err := session.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(users, func(w io.Writer) error {
				rows := make([][]string, 0, len(users))
				for _, u := range users {
					rows = append(rows, []string{u.UserID, strings.TrimSpace(u.FirstName + " " + u.LastName), u.Email, u.Status, strings.Join(u.Roles, ", ")})
				}
				return listTable(w, []string{"User", "Name", "Email", "Status", "Roles"}, rows)
			})
		},
	}
}

func newUserCreateCommand(app *App) *cobra.Command {
	var user client.User
	var enabled bool
	var roles string
	cmd := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user.UserID = args[0]
			user.Status = userStatus(enabled)
			user.Roles = splitList(roles)
			if user.Password == "" {
				password, err := app.readPassword("Password: ")
				if err != nil {
					return err
				}
				user.Password = password
			}
			session, err := app.Session()
			if err != nil {
				return err
			}
			if err := session.Users.Create(cmd.Context(), &user); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Created user %s\n", user.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&user.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&user.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&user.Email, "email", "", "email address")
	cmd.Flags().StringVar(&user.Password, "password", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the user is active")
	cmd.Flags().StringVar(&roles, "roles", "", "comma separated role ids")
	return cmd
}

func newUserUpdateCommand(app *App) *cobra.Command {
	var firstName, lastName, email, roles string
	var enabled bool
	cmd := &cobra.Command{
		Use:   "update USERNAME",
		Short: "Update a user; omitted fields keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var changes service.UserChanges
			if flags.Changed("first-name") {
				changes.FirstName = &firstName
			}
			if flags.Changed("last-name") {
				changes.LastName = &lastName
			}
			if flags.Changed("email") {
				changes.Email = &email
			}
			if flags.Changed("enabled") {
				status := userStatus(enabled)
				changes.Status = &status
			}
			if flags.Changed("roles") {
				changes.Roles = splitList(roles)
			}
			session, err := app.Session()
			if err != nil {
				return err
			}
			user, err := service.NewUserUpdater(session.Users).Update(cmd.Context(), args[0], changes)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Updated user %s\n", user.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the user is active")
	cmd.Flags().StringVar(&roles, "roles", "", "comma separated role ids, replacing the current roles")
	return cmd
}

func newUserDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete USERNAME",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session()
			if err != nil {
				return err
			}
			if err := session.Users.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Deleted user %s\n", args[0])
			return nil
		},
	}
}

var errPasswordMismatch = errors.New("passwords do not match")

func newUserChangePasswordCommand(app *App) *cobra.Command {
	var change client.PasswordChange
	cmd := &cobra.Command{
		Use:   "change-password USERNAME",
		Short: "Change a user's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			change.UserID = args[0]
			if change.OldPassword == "" {
				old, err := app.readPassword("Current password: ")
				if err != nil {
					return err
				}
				change.OldPassword = old
			}
			if change.NewPassword == "" {
				next, err := app.readPassword("New password: ")
				if err != nil {
					return err
				}
				confirm, err := app.readPassword("Confirm new password: ")
				if err != nil {
					return err
				}
				if next != confirm {
					return errPasswordMismatch
				}
				change.NewPassword = next
			}
			session, err := app.Session()
			if err != nil {
				return err
			}
			if err := session.Users.ChangePassword(cmd.Context(), change); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Changed password for %s\n", change.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&change.OldPassword, "old-password", "", "current password (prompted when omitted)")
	cmd.Flags().StringVar(&change.NewPassword, "new-password", "", "new password (prompted when omitted)")
	return cmd
}
