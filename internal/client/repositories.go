package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

const (
	DefaultProvider = "maven2"
	DefaultPolicy   = "RELEASE"
	repositoryRole  = "org.sonatype.nexus.proxy.repository.Repository"
)

// RepositoryService manages hosted, proxy and group repositories.
type RepositoryService struct {
	resources *Resources
}

// NewRepositoryService creates a RepositoryService over resources.
func NewRepositoryService(resources *Resources) *RepositoryService {
	return &RepositoryService{resources: resources}
}

// SanitizeID derives a repository id from a display name.
func SanitizeID(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

func newRepository(in RepositoryInput) Repository {
	id := in.ID
	if id == "" {
		id = in.Name
	}
	provider := in.Provider
	if provider == "" {
		provider = DefaultProvider
	}
	policy := strings.ToUpper(in.Policy)
	if policy == "" {
		policy = DefaultPolicy
	}

	repo := Repository{
		ID:           SanitizeID(id),
		Name:         in.Name,
		RepoType:     "hosted",
		RepoPolicy:   policy,
		Provider:     provider,
		ProviderRole: repositoryRole,
		Format:       "maven2",
		Exposed:      true,
		Browseable:   true,
		Indexable:    true,
		WritePolicy:  "ALLOW_WRITE_ONCE",
	}
	if policy == "SNAPSHOT" {
		repo.WritePolicy = "ALLOW_WRITE"
	}
	if in.Proxy {
		repo.RepoType = "proxy"
		repo.WritePolicy = "READ_ONLY"
		repo.ChecksumPolicy = "WARN"
		repo.DownloadRemoteIndexes = true
		repo.NotFoundCacheTTL = 1440
		repo.RemoteStorage = &RemoteStorage{RemoteStorageURL: in.URL}
	}
	return repo
}

// Create creates a hosted or proxy repository and returns its id.
func (s *RepositoryService) Create(ctx context.Context, in RepositoryInput) (string, error) {
	in.Policy = strings.ToUpper(in.Policy)
	if err := validatePayload("create repository", in); err != nil {
		return "", err
	}
	if in.URL != "" {
		if err := validate.Var(in.URL, "url"); err != nil {
			return "", fmt.Errorf("create repository: invalid remote url '%s': %w", in.URL, err)
		}
	}
	repo := newRepository(in)
	if _, err := s.resources.Create(ctx, ResourceRepository, dataEnvelope[Repository]{Data: repo}); err != nil {
		return "", fmt.Errorf("create repository '%s': %w", in.Name, err)
	}
	utils.WithComponent("repositories").Info("Created repository",
		zap.String(utils.FieldID, repo.ID),
		zap.String("repo_type", repo.RepoType))
	return repo.ID, nil
}

// Delete removes the repository with id.
func (s *RepositoryService) Delete(ctx context.Context, id string) error {
	if err := s.resources.Delete(ctx, ResourceRepository, SanitizeID(id)); err != nil {
		return fmt.Errorf("delete repository '%s': %w", id, err)
	}
	return nil
}

// Get returns the repository with id.
func (s *RepositoryService) Get(ctx context.Context, id string) (*Repository, error) {
	resp, err := s.resources.Get(ctx, ResourceRepository, SanitizeID(id))
	if err != nil {
		return nil, fmt.Errorf("get repository '%s': %w", id, err)
	}
	var envelope dataEnvelope[Repository]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get repository '%s': %w", id, err)
	}
	return &envelope.Data, nil
}

// GroupRepositoryService manages repository groups.
type GroupRepositoryService struct {
	resources *Resources
}

// NewGroupRepositoryService creates a GroupRepositoryService over resources.
func NewGroupRepositoryService(resources *Resources) *GroupRepositoryService {
	return &GroupRepositoryService{resources: resources}
}

// Create creates an empty group and returns its id. An empty id is derived
// from name; an empty provider means maven2.
func (s *GroupRepositoryService) Create(ctx context.Context, name, id, provider string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("create group repository: name is required")
	}
	if id == "" {
		id = name
	}
	if provider == "" {
		provider = DefaultProvider
	}
	group := GroupRepository{
		ID:           SanitizeID(id),
		Name:         name,
		Provider:     provider,
		Format:       "maven2",
		RepoType:     "group",
		Exposed:      true,
		Repositories: []GroupMember{},
	}
	if _, err := s.resources.Create(ctx, ResourceGroupRepository, dataEnvelope[GroupRepository]{Data: group}); err != nil {
		return "", fmt.Errorf("create group repository '%s': %w", name, err)
	}
	return group.ID, nil
}

// Get returns the group with id.
func (s *GroupRepositoryService) Get(ctx context.Context, id string) (*GroupRepository, error) {
	resp, err := s.resources.Get(ctx, ResourceGroupRepository, SanitizeID(id))
	if err != nil {
		return nil, fmt.Errorf("get group repository '%s': %w", id, err)
	}
	var envelope dataEnvelope[GroupRepository]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get group repository '%s': %w", id, err)
	}
	return &envelope.Data, nil
}

// Update replaces the group, including its full member list.
func (s *GroupRepositoryService) Update(ctx context.Context, group *GroupRepository) error {
	if group.ID == "" {
		return fmt.Errorf("update group repository: %w", ErrIDRequired)
	}
	if group.Repositories == nil {
		group.Repositories = []GroupMember{}
	}
	if _, err := s.resources.Update(ctx, ResourceGroupRepository, group.ID, dataEnvelope[GroupRepository]{Data: *group}); err != nil {
		return fmt.Errorf("update group repository '%s': %w", group.ID, err)
	}
	return nil
}

// Delete removes the group with id.
func (s *GroupRepositoryService) Delete(ctx context.Context, id string) error {
	if err := s.resources.Delete(ctx, ResourceGroupRepository, SanitizeID(id)); err != nil {
		return fmt.Errorf("delete group repository '%s': %w", id, err)
	}
	return nil
}
