package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		code   Code
		status int
	}{
		{Invalid("bad %s", "title"), CodeInvalid, http.StatusBadRequest},
		{Unauthorized("no session"), CodeUnauthorized, http.StatusUnauthorized},
		{Forbidden("not yours"), CodeForbidden, http.StatusForbidden},
		{NotFound("podcast"), CodeNotFound, http.StatusNotFound},
		{Conflict("duplicate"), CodeConflict, http.StatusConflict},
		{State("podcast is %s", "draft"), CodeState, http.StatusConflict},
		{Provider("tts", errors.New("503")), CodeProvider, http.StatusBadGateway},
		{Internal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, c.err.Code)
		assert.Equal(t, c.status, c.err.Status)
		assert.NotEmpty(t, c.err.Message)
	}
}

func TestFromPassesThroughWrapped(t *testing.T) {
	orig := NotFound("brand")
	wrapped := fmt.Errorf("get brand: %w", orig)

	got := From(wrapped)
	require.Same(t, orig, got)
}

func TestFromWrapsUnknown(t *testing.T) {
	cause := errors.New("connection refused")
	got := From(cause)

	assert.Equal(t, CodeInternal, got.Code)
	assert.ErrorIs(t, got, cause)
}

func TestErrorStringIncludesCause(t *testing.T) {
	e := Provider("imagegen", errors.New("http 500"))
	assert.Contains(t, e.Error(), "provider_error")
	assert.Contains(t, e.Error(), "http 500")
}
