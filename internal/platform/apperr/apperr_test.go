// Copyright (c) 2026 Musica. All rights reserved.
// Author: dg.castellanos.dev@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgcastell/musica/internal/platform/apperr"
)

/*
TestConstructors verifies the code/status pairing of each error constructor.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantCode   string
		wantStatus int
	}{
		{"not_found", apperr.NotFound("Song"), "NOT_FOUND", http.StatusNotFound},
		{"conflict", apperr.Conflict("duplicate"), "CONFLICT", http.StatusConflict},
		{"validation", apperr.ValidationError("bad input"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"rate_limited", apperr.RateLimited("slow down"), "RATE_LIMITED", http.StatusTooManyRequests},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
		{"unavailable", apperr.ServiceUnavailable("db down"), "SERVICE_UNAVAILABLE", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

/*
TestNotFound_Message verifies the resource name lands in the client message.
*/
func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "User not found", apperr.NotFound("User").Error())
}

/*
TestUnwrap verifies the cause chain works with errors.Is and that As digs
an AppError out of a wrapped chain.
*/
func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Internal(cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, apperr.IsAppError(wrapped))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)

	assert.False(t, apperr.IsAppError(cause))
	assert.Nil(t, apperr.As(cause))
}
