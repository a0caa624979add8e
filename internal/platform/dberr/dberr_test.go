// Copyright (c) 2026 Musica. All rights reserved.
// Author: dg.castellanos.dev@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgcastell/musica/internal/platform/apperr"
	"github.com/dgcastell/musica/internal/platform/dberr"
)

/*
TestWrap_NoRows verifies that pgx.ErrNoRows maps to a 404 AppError.
*/
func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "get_song")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestWrap_Unknown verifies that unclassified errors become internal errors
and the cause stays available for logging.
*/
func TestWrap_Unknown(t *testing.T) {
	cause := errors.New("connection refused")
	err := dberr.Wrap(fmt.Errorf("query: %w", cause), "list_songs")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.ErrorIs(t, ae, cause)
}

/*
TestWrap_Nil verifies that a nil error passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestIsUniqueViolation checks SQLSTATE 23505 classification, with and
without constraint-name scoping.
*/
func TestIsUniqueViolation(t *testing.T) {
	pairErr := &pgconn.PgError{Code: "23505", ConstraintName: "favorito_pair_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching_constraint", pairErr, "favorito_pair_key", true},
		{"any_constraint", pairErr, "", true},
		{"wrong_constraint", pairErr, "usuario_correo_key", false},
		{"wrapped_error", fmt.Errorf("insert: %w", pairErr), "favorito_pair_key", true},
		{"not_unique_violation", &pgconn.PgError{Code: "23503"}, "", false},
		{"plain_error", errors.New("boom"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dberr.IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}

/*
TestIsForeignKeyViolation checks SQLSTATE 23503 classification.
*/
func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, dberr.IsForeignKeyViolation(errors.New("boom")))
}
