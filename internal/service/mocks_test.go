package service

import (
	"context"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/stretchr/testify/mock"
)

// MockGroupClient is a mock implementation of client.GroupRepositoryClient
type MockGroupClient struct {
	mock.Mock
}

func (m *MockGroupClient) Get(ctx context.Context, id string) (*client.GroupRepository, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.GroupRepository), args.Error(1)
}

func (m *MockGroupClient) Update(ctx context.Context, group *client.GroupRepository) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

// MockUserClient is a mock implementation of client.UserClient
type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) Get(ctx context.Context, userID string) (*client.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.User), args.Error(1)
}

func (m *MockUserClient) Update(ctx context.Context, user *client.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
