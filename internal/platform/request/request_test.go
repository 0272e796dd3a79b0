// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/itinera/internal/platform/apperr"
	requestutil "github.com/taibuivan/itinera/internal/platform/request"
)

/*
TestOptionalInt covers absence, valid values and malformed input.
*/
func TestOptionalInt(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    *int
		wantErr bool
	}{
		{"absent", "", nil, false},
		{"empty", "?max_days=", nil, false},
		{"zero", "?max_days=0", intPtr(0), false},
		{"negative_passes_parsing", "?max_days=-2", intPtr(-2), false},
		{"decimal", "?max_days=1.5", nil, true},
		{"garbage", "?max_days=three", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/package"+tt.query, nil)

			got, err := requestutil.OptionalInt(request, "max_days")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "max_days", apperr.As(err).Details[0].Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestOptionalFloat rejects non-finite numbers.
*/
func TestOptionalFloat(t *testing.T) {
	request := httptest.NewRequest("GET", "/package?max_budget=150.25", nil)
	got, err := requestutil.OptionalFloat(request, "max_budget")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 150.25, *got, 1e-9)

	for _, raw := range []string{"NaN", "Inf", "-Inf", "1e400", "cheap"} {
		request := httptest.NewRequest("GET", "/package?max_budget="+raw, nil)
		_, err := requestutil.OptionalFloat(request, "max_budget")
		assert.Error(t, err, raw)
	}
}

/*
TestRequiredClaims fails for anonymous requests.
*/
func TestRequiredClaims(t *testing.T) {
	request := httptest.NewRequest("POST", "/admin/catalog/reload", nil)

	_, err := requestutil.RequiredClaims(request)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func intPtr(v int) *int { return &v }
