package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("delete capability: %w", &Error{Kind: KindNotFound, Resource: "capability 42", StatusCode: 404})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.False(t, errors.Is(err, ErrCreationRejected))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"Rejected with body", &Error{Kind: KindCreationRejected, Message: "bad type"}, "the server rejected the request: bad type"},
		{"Unexpected", &Error{Kind: KindUnexpectedStatus, StatusCode: 418}, "unexpected status code 418"},
		{"Resource prefix", &Error{Kind: KindNotFound, Resource: "user bob"}, "user bob: not found"},
		{"Cause", &Error{Kind: KindServerUnavailable, Err: errors.New("connection refused")}, "could not connect to the Nexus server: connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	kinds := []ErrorKind{
		KindCreationRejected, KindNotFound, KindServerUnavailable, KindInvalidSettings,
		KindUnexpectedStatus, KindNotSupported, KindInvalidCredentials,
	}
	seen := make(map[int]ErrorKind)
	for _, k := range kinds {
		code := k.ExitCode()
		assert.NotZero(t, code)
		prev, dup := seen[code]
		assert.False(t, dup, "%s shares exit code %d with %s", k, code, prev)
		seen[code] = k
	}
}
