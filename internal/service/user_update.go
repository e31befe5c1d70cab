package service

import (
	"context"
	"fmt"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

// UserChanges holds the fields to change on a user. Nil fields keep the
// current value.
type UserChanges struct {
	FirstName *string
	LastName  *string
	Email     *string
	Status    *string
	Roles     []string
}

// Empty reports whether no field is set.
func (c UserChanges) Empty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Email == nil && c.Status == nil && c.Roles == nil
}

// UserUpdater applies partial changes on top of the server's current record.
type UserUpdater struct {
	users client.UserClient
}

// NewUserUpdater creates a UserUpdater over users.
func NewUserUpdater(users client.UserClient) *UserUpdater {
	return &UserUpdater{users: users}
}

// Update reads the user, merges changes and replaces the record.
func (u *UserUpdater) Update(ctx context.Context, userID string, changes UserChanges) (*client.User, error) {
	current, err := u.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if changes.Empty() {
		utils.WithComponent("user_updater").Debug("No user changes given, skipping update",
			zap.String(utils.FieldID, userID))
		return current, nil
	}

	merged := MergeUser(*current, changes)
	if err := u.users.Update(ctx, &merged); err != nil {
		return nil, fmt.Errorf("update user '%s': %w", userID, err)
	}
	utils.WithComponent("user_updater").Info("Updated user", zap.String(utils.FieldID, userID))
	return &merged, nil
}

// MergeUser applies the set fields of changes to user.
func MergeUser(user client.User, changes UserChanges) client.User {
	if changes.FirstName != nil {
		user.FirstName = *changes.FirstName
	}
	if changes.LastName != nil {
		user.LastName = *changes.LastName
	}
	if changes.Email != nil {
		user.Email = *changes.Email
	}
	if changes.Status != nil {
		user.Status = *changes.Status
	}
	if changes.Roles != nil {
		user.Roles = append([]string(nil), changes.Roles...)
	}
	user.Password = ""
	return user
}
