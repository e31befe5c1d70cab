package client

import (
	"context"
	"fmt"

	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

// Session is the base-edition operation set bound to one connection. The
// edition is resolved once and never changes for the session.
type Session struct {
	resources *Resources
	gate      Gate
	status    *Status

	Capabilities *CapabilityService
	Repositories *RepositoryService
	Groups       *GroupRepositoryService
	Users        *UserService
	Logging      *LoggingService
}

// NewSession builds a session for a known edition without contacting the server.
func NewSession(transport Transport, edition Edition) *Session {
	resources := NewResources(transport, nil)
	return &Session{
		resources:    resources,
		gate:         NewGate(edition),
		Capabilities: NewCapabilityService(resources),
		Repositories: NewRepositoryService(resources),
		Groups:       NewGroupRepositoryService(resources),
		Users:        NewUserService(resources),
		Logging:      NewLoggingService(resources),
	}
}

// Connect reads the server status once and builds a session for its edition.
func Connect(ctx context.Context, transport Transport) (*Session, error) {
	status, err := GetStatus(ctx, NewResources(transport, nil))
	if err != nil {
		return nil, err
	}
	edition := EditionFromStatus(status)
	utils.WithComponent("session").Debug("Resolved server edition",
		zap.String(utils.FieldEdition, edition.String()),
		zap.String("version", status.Version))

	s := NewSession(transport, edition)
	s.status = status
	return s, nil
}

// GetStatus reads the server status.
func GetStatus(ctx context.Context, resources *Resources) (*Status, error) {
	resp, err := resources.Get(ctx, ResourceStatus, "")
	if err != nil {
		return nil, fmt.Errorf("get nexus status: %w", err)
	}
	var envelope dataEnvelope[Status]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get nexus status: %w", err)
	}
	return &envelope.Data, nil
}

// Status returns the status read by Connect, or nil for NewSession.
func (s *Session) Status() *Status {
	return s.status
}

// Edition returns the session's edition.
func (s *Session) Edition() Edition {
	return s.gate.Edition()
}

// Supports reports whether feature is available on this server.
func (s *Session) Supports(feature Feature) bool {
	return s.gate.Supports(feature)
}

// Resources exposes the underlying facade.
func (s *Session) Resources() *Resources {
	return s.resources
}

// Pro returns the extended operation set, or NotSupported on a base server.
func (s *Session) Pro() (*ProClient, error) {
	if s.gate.Edition() != EditionExtended {
		return nil, &Error{Kind: KindNotSupported, Resource: "nexus pro"}
	}
	return newProClient(s.resources, s.gate), nil
}
