package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func members(ids ...string) []client.GroupMember {
	out := make([]client.GroupMember, 0, len(ids))
	for _, id := range ids {
		out = append(out, client.GroupMember{ID: id})
	}
	return out
}

func memberIDs(ms []client.GroupMember) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestMergeMembers(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		add     []string
		want    []string
	}{
		{"append new", []string{"releases"}, []string{"snapshots"}, []string{"releases", "snapshots"}},
		{"skip existing", []string{"releases", "central"}, []string{"central", "thirdparty"}, []string{"releases", "central", "thirdparty"}},
		{"dedup input", nil, []string{"a", "a", "b"}, []string{"a", "b"}},
		{"skip blank", []string{"a"}, []string{"", " "}, []string{"a"}},
		{"sanitized", nil, []string{"Third Party"}, []string{"third_party"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeMembers(members(tt.current...), tt.add)
			assert.Equal(t, tt.want, memberIDs(got))
		})
	}
}

func TestRemoveMembers(t *testing.T) {
	got := RemoveMembers(members("a", "b", "c", "d"), []string{"c", "a", "missing"})
	assert.Equal(t, []string{"b", "d"}, memberIDs(got))
	assert.Empty(t, RemoveMembers(nil, []string{"a"}))
}

func TestGroupMembership_Add(t *testing.T) {
	groups := new(MockGroupClient)
	ctx := context.Background()
	groups.On("Get", ctx, "public").Return(&client.GroupRepository{ID: "public", Repositories: members("releases")}, nil)
	groups.On("Update", ctx, mock.MatchedBy(func(g *client.GroupRepository) bool {
		return assert.ObjectsAreEqual([]string{"releases", "central"}, memberIDs(g.Repositories))
	})).Return(nil)

	group, err := NewGroupMembership(groups).Add(ctx, "public", []string{"central"})
	require.NoError(t, err)
	assert.Equal(t, []string{"releases", "central"}, memberIDs(group.Repositories))
	groups.AssertExpectations(t)
}

func TestGroupMembership_AddNoChangeSkipsUpdate(t *testing.T) {
	groups := new(MockGroupClient)
	ctx := context.Background()
	groups.On("Get", ctx, "public").Return(&client.GroupRepository{ID: "public", Repositories: members("releases")}, nil)

	_, err := NewGroupMembership(groups).Add(ctx, "public", []string{"releases"})
	require.NoError(t, err)
	groups.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGroupMembership_Remove(t *testing.T) {
	groups := new(MockGroupClient)
	ctx := context.Background()
	groups.On("Get", ctx, "public").Return(&client.GroupRepository{ID: "public", Repositories: members("releases", "central")}, nil)
	groups.On("Update", ctx, mock.Anything).Return(nil)

	group, err := NewGroupMembership(groups).Remove(ctx, "public", []string{"releases"})
	require.NoError(t, err)
	assert.Equal(t, []string{"central"}, memberIDs(group.Repositories))
	groups.AssertNumberOfCalls(t, "Update", 1)
}

func TestGroupMembership_GetFailureStops(t *testing.T) {
	groups := new(MockGroupClient)
	ctx := context.Background()
	groups.On("Get", ctx, "missing").Return(nil, &client.Error{Kind: client.KindNotFound})

	_, err := NewGroupMembership(groups).Add(ctx, "missing", []string{"a"})
	assert.True(t, client.IsNotFound(err))
	groups.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGroupMembership_UpdateFailure(t *testing.T) {
	groups := new(MockGroupClient)
	ctx := context.Background()
	groups.On("Get", ctx, "public").Return(&client.GroupRepository{ID: "public"}, nil)
	groups.On("Update", ctx, mock.Anything).Return(errors.New("boom"))

	_, err := NewGroupMembership(groups).Add(ctx, "public", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add repositories to group 'public'")
}
