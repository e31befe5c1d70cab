package client

import (
	"context"
	"fmt"
)

// UserService manages Nexus users.
type UserService struct {
	resources *Resources
}

// NewUserService creates a UserService over resources.
func NewUserService(resources *Resources) *UserService {
	return &UserService{resources: resources}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	resp, err := s.resources.Get(ctx, ResourceUser, "")
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	var envelope dataEnvelope[[]User]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return envelope.Data, nil
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, userID string) (*User, error) {
	resp, err := s.resources.Get(ctx, ResourceUser, userID)
	if err != nil {
		return nil, fmt.Errorf("get user '%s': %w", userID, err)
	}
	var envelope dataEnvelope[User]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get user '%s': %w", userID, err)
	}
	return &envelope.Data, nil
}

// Create creates a user. The password is required on create only.
func (s *UserService) Create(ctx context.Context, user *User) error {
	if err := validatePayload("create user", user); err != nil {
		return err
	}
	if user.Password == "" {
		return fmt.Errorf("create user '%s': password is required", user.UserID)
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}
	if _, err := s.resources.Create(ctx, ResourceUser, dataEnvelope[*User]{Data: user}); err != nil {
		return fmt.Errorf("create user '%s': %w", user.UserID, err)
	}
	return nil
}

// Update replaces the user record. The password is never sent on update.
func (s *UserService) Update(ctx context.Context, user *User) error {
	if err := validatePayload("update user", user); err != nil {
		return err
	}
	body := *user
	body.Password = ""
	if body.Roles == nil {
		body.Roles = []string{}
	}
	if _, err := s.resources.Update(ctx, ResourceUser, user.UserID, dataEnvelope[User]{Data: body}); err != nil {
		return fmt.Errorf("update user '%s': %w", user.UserID, err)
	}
	return nil
}

// Delete removes the user with id.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.resources.Delete(ctx, ResourceUser, userID); err != nil {
		return fmt.Errorf("delete user '%s': %w", userID, err)
	}
	return nil
}

// ChangePassword sets a new password. A wrong old password is InvalidCredentials.
func (s *UserService) ChangePassword(ctx context.Context, change PasswordChange) error {
	if err := validatePayload("change password", change); err != nil {
		return err
	}
	if _, err := s.resources.Create(ctx, ResourceUserPassword, dataEnvelope[PasswordChange]{Data: change}); err != nil {
		return fmt.Errorf("change password for '%s': %w", change.UserID, err)
	}
	return nil
}
