package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_DefaultTables(t *testing.T) {
	tests := []struct {
		action Action
		status int
		want   ErrorKind // KindUnknown means success
	}{
		{ActionCreate, http.StatusOK, KindUnknown},
		{ActionCreate, http.StatusBadRequest, KindCreationRejected},
		{ActionCreate, http.StatusNotFound, KindUnexpectedStatus},
		{ActionCreate, http.StatusNoContent, KindUnexpectedStatus},
		{ActionUpdate, http.StatusOK, KindUnknown},
		{ActionUpdate, http.StatusBadRequest, KindCreationRejected},
		{ActionUpdate, http.StatusInternalServerError, KindUnexpectedStatus},
		{ActionDelete, http.StatusNoContent, KindUnknown},
		{ActionDelete, http.StatusNotFound, KindNotFound},
		{ActionDelete, http.StatusOK, KindUnexpectedStatus},
		{ActionReadOne, http.StatusOK, KindUnknown},
		{ActionReadOne, http.StatusNotFound, KindNotFound},
		{ActionReadOne, http.StatusServiceUnavailable, KindServerUnavailable},
		{ActionReadOne, http.StatusUnauthorized, KindUnexpectedStatus},
		{ActionReadCollection, http.StatusOK, KindUnknown},
		{ActionReadCollection, http.StatusServiceUnavailable, KindServerUnavailable},
		{ActionReadCollection, http.StatusNotFound, KindUnexpectedStatus},
		{ActionSettingsUpload, http.StatusNoContent, KindUnknown},
		{ActionSettingsUpload, http.StatusBadRequest, KindInvalidSettings},
		{ActionSettingsUpload, http.StatusOK, KindUnexpectedStatus},
		{ActionSettingsUpload, http.StatusInternalServerError, KindUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.action.String()+"/"+http.StatusText(tt.status), func(t *testing.T) {
			err := Classify(DefaultTable(tt.action), tt.status, "body")
			if tt.want == KindUnknown {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestClassify_UnexpectedCarriesCode(t *testing.T) {
	err := Classify(DefaultTable(ActionDelete), http.StatusTeapot, "")

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindUnexpectedStatus, e.Kind)
	assert.Equal(t, http.StatusTeapot, e.StatusCode)
}

func TestClassify_RejectionKeepsBody(t *testing.T) {
	err := Classify(DefaultTable(ActionUpdate), http.StatusBadRequest, "bad type")

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "bad type", e.Message)
}

func TestTableOverrides(t *testing.T) {
	base := DefaultTable(ActionCreate)
	users := base.WithSuccess(http.StatusCreated)

	assert.NoError(t, Classify(users, http.StatusCreated, ""))
	assert.Equal(t, KindUnexpectedStatus, KindOf(Classify(users, http.StatusOK, "")))
	// The original table is untouched.
	assert.NoError(t, Classify(base, http.StatusOK, ""))

	pw := base.WithSuccess(http.StatusAccepted).WithError(http.StatusBadRequest, KindInvalidCredentials)
	assert.Equal(t, KindInvalidCredentials, KindOf(Classify(pw, http.StatusBadRequest, "")))
	assert.Equal(t, KindCreationRejected, KindOf(Classify(base, http.StatusBadRequest, "")))
}
