package client

import (
	"context"
	"fmt"

	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

// CapabilityService manages capabilities through the siesta API.
type CapabilityService struct {
	resources *Resources
}

// NewCapabilityService creates a CapabilityService over resources.
func NewCapabilityService(resources *Resources) *CapabilityService {
	return &CapabilityService{resources: resources}
}

// newCapabilityBody applies the enabled-by-default policy here rather than
// leaving it to the server.
func newCapabilityBody(in CapabilityInput) capabilityBody {
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	props := in.Properties
	if props == nil {
		props = []Property{}
	}
	return capabilityBody{TypeID: in.TypeID, Enabled: enabled, Properties: props}
}

// Create creates a capability and returns the server-assigned id.
func (s *CapabilityService) Create(ctx context.Context, in CapabilityInput) (string, error) {
	if err := validatePayload("create capability", in); err != nil {
		return "", err
	}
	resp, err := s.resources.Create(ctx, ResourceCapability, newCapabilityBody(in))
	if err != nil {
		return "", fmt.Errorf("create capability '%s': %w", in.TypeID, err)
	}
	var created CapabilityStatus
	if err := decode(resp, &created); err != nil {
		return "", fmt.Errorf("create capability '%s': %w", in.TypeID, err)
	}
	utils.WithComponent("capabilities").Info("Created capability",
		zap.String(utils.FieldID, created.Capability.ID),
		zap.String("type_id", in.TypeID))
	return created.Capability.ID, nil
}

// Update replaces the capability with id. Fields omitted from in are not
// carried over from the previous value.
func (s *CapabilityService) Update(ctx context.Context, id string, in CapabilityInput) (string, error) {
	if err := validatePayload("update capability", in); err != nil {
		return "", err
	}
	if _, err := s.resources.Update(ctx, ResourceCapability, id, newCapabilityBody(in)); err != nil {
		return "", fmt.Errorf("update capability '%s': %w", id, err)
	}
	return id, nil
}

// Delete removes the capability with id.
func (s *CapabilityService) Delete(ctx context.Context, id string) error {
	if err := s.resources.Delete(ctx, ResourceCapability, id); err != nil {
		return fmt.Errorf("delete capability '%s': %w", id, err)
	}
	return nil
}

// Get returns the capability with id.
func (s *CapabilityService) Get(ctx context.Context, id string) (*CapabilityStatus, error) {
	resp, err := s.resources.Get(ctx, ResourceCapability, id)
	if err != nil {
		return nil, fmt.Errorf("get capability '%s': %w", id, err)
	}
	var capability CapabilityStatus
	if err := decode(resp, &capability); err != nil {
		return nil, fmt.Errorf("get capability '%s': %w", id, err)
	}
	return &capability, nil
}

// List returns every capability.
func (s *CapabilityService) List(ctx context.Context) ([]CapabilityStatus, error) {
	resp, err := s.resources.Get(ctx, ResourceCapability, "")
	if err != nil {
		return nil, fmt.Errorf("get capabilities: %w", err)
	}
	var capabilities []CapabilityStatus
	if err := decode(resp, &capabilities); err != nil {
		return nil, fmt.Errorf("get capabilities: %w", err)
	}
	return capabilities, nil
}
