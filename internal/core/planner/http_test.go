// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package planner_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/itinera/internal/core/planner"
)

func newPlannerRouter(t *testing.T) http.Handler {
	t.Helper()
	service, _ := newService(t, newMemoryCache(), planner.Options{SearchTimeout: time.Second, MaxCandidates: 40})

	router := chi.NewRouter()
	router.Route("/regions", planner.NewHandler(service).RegisterRoutes)
	return router
}

/*
TestHandler_GeneratePackage covers the query contract of the package endpoint.
*/
func TestHandler_GeneratePackage(t *testing.T) {
	router := newPlannerRouter(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
		tours  []string
		value  float64
	}{
		{name: "scenario", path: "/regions/R/package?max_days=3&max_budget=150", status: http.StatusOK, tours: []string{"A", "B"}, value: 18},
		{name: "no_limits", path: "/regions/R/package", status: http.StatusOK, tours: []string{"A", "B"}, value: 18},
		{name: "zero_days", path: "/regions/R/package?max_days=0", status: http.StatusOK, tours: []string{}, value: 0},
		{name: "empty_region", path: "/regions/T/package", status: http.StatusOK, tours: []string{}, value: 0},
		{name: "negative_budget", path: "/regions/R/package?max_budget=-1", status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "malformed_days", path: "/regions/R/package?max_days=three", status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "infinite_budget", path: "/regions/R/package?max_budget=Inf", status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "unknown_region", path: "/regions/X/package", status: http.StatusNotFound, code: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, recorder.Code, recorder.Body.String())

			if tt.code != "" {
				var failure struct {
					Code string `json:"code"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &failure))
				assert.Equal(t, tt.code, failure.Code)
				return
			}

			var envelope struct {
				Data planner.PackageResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.tours, envelope.Data.Tours)
			assert.InDelta(t, tt.value, envelope.Data.TotalValue, 1e-9)
			assert.Len(t, envelope.Data.TourDetails, len(tt.tours))
			assert.NotEmpty(t, envelope.Data.CatalogVersion)
		})
	}
}
