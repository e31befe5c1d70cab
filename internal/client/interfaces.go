package client

import "context"

// GroupRepositoryClient is the subset of group repository operations the
// membership workflow composes. *GroupRepositoryService implements it.
type GroupRepositoryClient interface {
	Get(ctx context.Context, id string) (*GroupRepository, error)
	Update(ctx context.Context, group *GroupRepository) error
}

// UserClient is the subset of user operations the user update workflow
// composes. *UserService implements it.
type UserClient interface {
	Get(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, user *User) error
}

var (
	_ GroupRepositoryClient = (*GroupRepositoryService)(nil)
	_ UserClient            = (*UserService)(nil)
)

// PubSubClient reads and replaces a repository's publish/subscribe state.
// *ProClient implements it.
type PubSubClient interface {
	PubSub(ctx context.Context, repositoryID string) (*PubSub, error)
	SetPubSub(ctx context.Context, state PubSub) error
}

var _ PubSubClient = (*ProClient)(nil)
