package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("court")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(InvalidRequest("bad slot")))
	assert.Equal(t, http.StatusConflict, StatusOf(Conflict("slot taken")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(Unauthorized("no token")))
	assert.Equal(t, http.StatusForbidden, StatusOf(Forbidden("wrong role")))

	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("driver: bad connection")))
}

func TestStatusOfWrapped(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", Conflict("slot taken"))
	assert.Equal(t, http.StatusConflict, StatusOf(err))
	assert.Equal(t, "slot taken", MessageOf(err))
}

func TestMessageOfHidesInternals(t *testing.T) {
	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: connection refused")))
	assert.Equal(t, "court not found", MessageOf(NotFound("court")))
}

func TestWrapf(t *testing.T) {
	base := NotFound("booking")
	wrapped := Wrapf(base, "loading booking %d", 42)

	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
	assert.Contains(t, wrapped.Error(), "loading booking 42")
}
