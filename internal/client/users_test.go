package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodPost, "/service/local/users", http.StatusCreated, `{"data":{"userId":"jdoe"}}`)

	err := NewUserService(r).Create(context.Background(), &User{
		UserID:   "jdoe",
		Email:    "jdoe@example.com",
		Status:   "active",
		Password: "s3cret",
	})
	require.NoError(t, err)

	rec, _ := srv.Last(http.MethodPost, "/service/local/users")
	assert.JSONEq(t, `{"data":{"userId":"jdoe","firstName":"","lastName":"","email":"jdoe@example.com","status":"active","password":"s3cret","roles":[]}}`, rec.Body)
}

func TestUserService_CreateValidation(t *testing.T) {
	srv, r := newTestResources(t)
	svc := NewUserService(r)
	ctx := context.Background()

	assert.Error(t, svc.Create(ctx, &User{UserID: "a", Status: "active"}), "password required")
	assert.Error(t, svc.Create(ctx, &User{UserID: "a", Status: "locked", Password: "x"}))
	assert.Error(t, svc.Create(ctx, &User{UserID: "a", Status: "active", Password: "x", Email: "nope"}))
	assert.Empty(t, srv.Requests())
}

func TestUserService_UpdateDropsPassword(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodPut, "/service/local/users/jdoe", http.StatusOK, `{"data":{}}`)

	err := NewUserService(r).Update(context.Background(), &User{UserID: "jdoe", Status: "disabled", Password: "x", Roles: []string{"nx-admin"}})
	require.NoError(t, err)

	rec, _ := srv.Last(http.MethodPut, "/service/local/users/jdoe")
	assert.NotContains(t, rec.Body, "password")
	assert.Contains(t, rec.Body, `"roles":["nx-admin"]`)
}

func TestUserService_ListAndGet(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodGet, "/service/local/users", http.StatusOK, `{"data":[{"userId":"admin"},{"userId":"anonymous"}]}`)
	srv.On(http.MethodGet, "/service/local/users/ghost", http.StatusNotFound, "")
	svc := NewUserService(r)
	ctx := context.Background()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "anonymous", users[1].UserID)

	_, err = svc.Get(ctx, "ghost")
	assert.True(t, IsNotFound(err))
}

func TestUserService_ChangePassword(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodPost, "/service/local/users_changepw", http.StatusAccepted, "").
		On(http.MethodPost, "/service/local/users_changepw", http.StatusBadRequest, "wrong password")
	svc := NewUserService(r)
	ctx := context.Background()
	change := PasswordChange{UserID: "jdoe", OldPassword: "old", NewPassword: "new"}

	require.NoError(t, svc.ChangePassword(ctx, change))

	err := svc.ChangePassword(ctx, change)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 107, KindOf(err).ExitCode())
}

func TestLoggingService(t *testing.T) {
	srv, r := newTestResources(t)
	srv.On(http.MethodGet, "/service/local/log/config", http.StatusOK, `{"data":{"rootLoggerLevel":"INFO"}}`)
	srv.On(http.MethodPut, "/service/local/log/config", http.StatusOK, `{"data":{}}`)
	svc := NewLoggingService(r)
	ctx := context.Background()

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.RootLoggerLevel)

	require.NoError(t, svc.SetLevel(ctx, "debug"))
	rec, _ := srv.Last(http.MethodPut, "/service/local/log/config")
	assert.Contains(t, rec.Body, `"rootLoggerLevel":"DEBUG"`)

	assert.ErrorIs(t, svc.SetLevel(ctx, "TRACE"), ErrInvalidLoggerLevel)
	assert.Equal(t, 1, srv.Count(http.MethodPut, "/service/local/log/config"))
}
