// Copyright (c) 2026 Musica. All rights reserved.
// Author: dg.castellanos.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgcastell/musica/pkg/pagination"
)

/*
TestParams_Offset verifies the 1-indexed window math.

With per_page=4 over a 10-item collection, page 1 covers items 1–4,
page 3 covers items 9–10 and page 4 is past the end.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantOffset int
	}{
		{"first_page", 1, 4, 0},
		{"second_page", 2, 4, 4},
		{"partial_last_page", 3, 4, 8},
		{"past_the_end", 4, 4, 12},
		{"clamped_zero_page", 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Params{Page: tt.page, PerPage: tt.perPage}
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

/*
TestNewMeta checks total page computation, including the partial final page.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(3, 4, 10)

	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, 4, meta.PerPage)
	assert.Equal(t, 10, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	empty := pagination.NewMeta(1, 4, 0)
	assert.Equal(t, 0, empty.TotalPages)
}

/*
TestFromRequest verifies query parsing and clamping of hostile values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, 4},
		{"explicit_values", "?page=3&per_page=10", 3, 10},
		{"negative_page", "?page=-2", 1, 4},
		{"zero_per_page", "?per_page=0", 1, 4},
		{"excessive_per_page", "?per_page=5000", 1, 4},
		{"garbage_input", "?page=abc&per_page=xyz", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/canciones"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPerPage, params.PerPage)
		})
	}
}
