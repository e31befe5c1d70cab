package client

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const capabilitiesPath = "/service/siesta/capabilities"

func TestCapabilityService_Create(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodPost, capabilitiesPath, http.StatusOK, `{"capability":{"id":"42"}}`)
	svc := NewCapabilityService(r)

	id, err := svc.Create(context.Background(), CapabilityInput{
		TypeID:     "foo",
		Properties: []Property{{Key: "a", Value: "1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", id)

	rec, ok := srv.Last(http.MethodPost, capabilitiesPath)
	require.True(t, ok)
	assert.JSONEq(t, `{"typeId":"foo","enabled":true,"properties":[{"key":"a","value":"1"}]}`, rec.Body)
}

func TestCapabilityService_CreateDisabledKeepsPropertyOrder(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodPost, capabilitiesPath, http.StatusOK, `{"capability":{"id":"1"}}`)
	disabled := false

	_, err := NewCapabilityService(r).Create(context.Background(), CapabilityInput{
		TypeID:     "healthcheck",
		Enabled:    &disabled,
		Properties: []Property{{Key: "z", Value: "1"}, {Key: "a", Value: "2"}},
	})
	require.NoError(t, err)

	rec, _ := srv.Last(http.MethodPost, capabilitiesPath)
	assert.JSONEq(t, `{"typeId":"healthcheck","enabled":false,"properties":[{"key":"z","value":"1"},{"key":"a","value":"2"}]}`, rec.Body)
	assert.Less(t, strings.Index(rec.Body, `"z"`), strings.Index(rec.Body, `"a"`))
}

func TestCapabilityService_CreateRequiresType(t *testing.T) {
	srv, r := newTestResources(t)

	_, err := NewCapabilityService(r).Create(context.Background(), CapabilityInput{})
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestCapabilityService_DeleteMissing(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodDelete, capabilitiesPath+"/42", http.StatusNotFound, "")

	err := NewCapabilityService(r).Delete(context.Background(), "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, srv.Count(http.MethodDelete, capabilitiesPath+"/42"))
}

func TestCapabilityService_UpdateRejected(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodPut, capabilitiesPath+"/7", http.StatusBadRequest, "bad type")

	_, err := NewCapabilityService(r).Update(context.Background(), "7", CapabilityInput{TypeID: "x"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindCreationRejected, apiErr.Kind)
	assert.Equal(t, "bad type", apiErr.Message)
}

func TestCapabilityService_GetAndList(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodGet, capabilitiesPath+"/42", http.StatusOK,
		`{"capability":{"id":"42","typeId":"foo","enabled":true,"properties":[{"key":"a","value":"1"}]},"active":true,"typeName":"Foo"}`)
	srv.On(http.MethodGet, capabilitiesPath, http.StatusOK,
		`[{"capability":{"id":"42","typeId":"foo"}},{"capability":{"id":"43","typeId":"bar"}}]`)
	svc := NewCapabilityService(r)
	ctx := context.Background()

	got, err := svc.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "foo", got.Capability.TypeID)
	assert.True(t, got.Active)
	assert.Equal(t, []Property{{Key: "a", Value: "1"}}, got.Capability.Properties)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "43", all[1].Capability.ID)
}

func TestCapabilityService_UnexpectedStatus(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodPost, capabilitiesPath, http.StatusTeapot, "")

	_, err := NewCapabilityService(r).Create(context.Background(), CapabilityInput{TypeID: "foo"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnexpectedStatus, apiErr.Kind)
	assert.Equal(t, http.StatusTeapot, apiErr.StatusCode)
}
