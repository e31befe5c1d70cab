package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

// GroupMembership edits the member list of a repository group. Each edit is
// a read of the group followed by a full-replace update.
type GroupMembership struct {
	groups client.GroupRepositoryClient
}

// NewGroupMembership creates a GroupMembership over groups.
func NewGroupMembership(groups client.GroupRepositoryClient) *GroupMembership {
	return &GroupMembership{groups: groups}
}

// Add appends repositories to the group. Members already present keep their
// position and are not duplicated.
func (gm *GroupMembership) Add(ctx context.Context, groupID string, repositoryIDs []string) (*client.GroupRepository, error) {
	group, err := gm.groups.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members := MergeMembers(group.Repositories, repositoryIDs)
	if len(members) == len(group.Repositories) {
		utils.WithComponent("group_membership").Debug("Repositories already in group, skipping update",
			zap.String(utils.FieldID, groupID))
		return group, nil
	}
	group.Repositories = members
	if err := gm.groups.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("add repositories to group '%s': %w", groupID, err)
	}
	utils.WithComponent("group_membership").Info("Added repositories to group",
		zap.String(utils.FieldID, groupID),
		zap.Strings("repositories", repositoryIDs))
	return group, nil
}

// Remove drops repositories from the group. Absent members are ignored.
func (gm *GroupMembership) Remove(ctx context.Context, groupID string, repositoryIDs []string) (*client.GroupRepository, error) {
	group, err := gm.groups.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members := RemoveMembers(group.Repositories, repositoryIDs)
	if len(members) == len(group.Repositories) {
		utils.WithComponent("group_membership").Debug("Repositories not in group, skipping update",
			zap.String(utils.FieldID, groupID))
		return group, nil
	}
	group.Repositories = members
	if err := gm.groups.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("remove repositories from group '%s': %w", groupID, err)
	}
	utils.WithComponent("group_membership").Info("Removed repositories from group",
		zap.String(utils.FieldID, groupID),
		zap.Strings("repositories", repositoryIDs))
	return group, nil
}

// MergeMembers returns current followed by every id not already present,
// in order. Empty ids are skipped.
func MergeMembers(current []client.GroupMember, ids []string) []client.GroupMember {
	seen := make(map[string]struct{}, len(current)+len(ids))
	merged := make([]client.GroupMember, 0, len(current)+len(ids))
	for _, m := range current {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	for _, id := range ids {
		id = client.SanitizeID(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, client.GroupMember{ID: id})
	}
	return merged
}

// RemoveMembers returns current without the given ids, order preserved.
func RemoveMembers(current []client.GroupMember, ids []string) []client.GroupMember {
	drop := make([]string, 0, len(ids))
	for _, id := range ids {
		drop = append(drop, client.SanitizeID(id))
	}
	kept := make([]client.GroupMember, 0, len(current))
	for _, m := range current {
		if slices.Contains(drop, m.ID) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
