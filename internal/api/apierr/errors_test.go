package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/guessr/internal/model"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{model.ErrPlayerNotFound, http.StatusNotFound},
		{fmt.Errorf("get hangman: %w", model.ErrGameNotFound), http.StatusNotFound},
		{&model.ValidationError{Field: "name", Err: model.ErrEmptyName}, http.StatusBadRequest},
		{NewInvalidRequestError("bad id"), http.StatusBadRequest},
		{NewMethodNotAllowedError(), http.StatusMethodNotAllowed},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.err), "error %v", tt.err)
	}
}

func TestWriteErrorEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, model.ErrPlayerNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, CodePlayerNotFound, body.Error.Code)
	assert.Equal(t, "Player not found", body.Error.Message)
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, errors.New("connection refused"))

	assert.NotContains(t, rr.Body.String(), "connection refused")
}
