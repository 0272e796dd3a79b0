// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/itinera/internal/api"
	"github.com/taibuivan/itinera/internal/core/catalog"
	"github.com/taibuivan/itinera/internal/core/planner"
	"github.com/taibuivan/itinera/internal/platform/config"
	"github.com/taibuivan/itinera/internal/platform/constants"
	"github.com/taibuivan/itinera/internal/platform/middleware"
	"github.com/taibuivan/itinera/internal/platform/sec"
)

func demoSource() *catalog.MemorySource {
	return &catalog.MemorySource{
		Regions: []catalog.RegionRecord{{ID: "R", Name: "Riviera"}, {ID: "T", Name: "Toscana"}},
		Tours: map[string]catalog.TourRecord{
			"A": {ID: "A", RegionID: "R", DurationDays: 2, Cost: 100},
			"B": {ID: "B", RegionID: "R", DurationDays: 1, Cost: 50},
			"C": {ID: "C", RegionID: "R", DurationDays: 3, Cost: 200},
		},
		Attractions: map[string]catalog.AttractionRecord{
			"a1": {ID: "a1", CulturalValue: 5},
			"a2": {ID: "a2", CulturalValue: 3},
			"a3": {ID: "a3", CulturalValue: 10},
		},
		Edges: []catalog.Edge{
			{TourID: "A", AttractionID: "a1"},
			{TourID: "A", AttractionID: "a2"},
			{TourID: "B", AttractionID: "a3"},
			{TourID: "C", AttractionID: "a1"},
		},
	}
}

type testServer struct {
	handler http.Handler
	key     *rsa.PrivateKey
}

func newTestServer(t *testing.T, withAdmin bool, deps api.HealthDependencies) testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	holder, err := catalog.NewHolder(context.Background(), demoSource(), logger)
	require.NoError(t, err)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var verifier middleware.TokenVerifier
	if withAdmin {
		verifier = sec.NewTokenVerifierFromKey(&key.PublicKey, constants.AuthIssuer)
	}

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, logger, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalog.NewHandler(catalog.NewService(holder, logger)),
		Planner:   planner.NewHandler(planner.NewService(holder, planner.NopCache{}, logger, planner.Options{SearchTimeout: time.Second, MaxCandidates: 40})),
	})
	return testServer{handler: server.Handler(), key: key}
}

func (s testServer) token(t *testing.T, role string) string {
	t.Helper()
	claims := sec.AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops-1",
			Issuer:    constants.AuthIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	require.NoError(t, err)
	return signed
}

func (s testServer) do(method, path, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, nil)
	request.RemoteAddr = "192.0.2.10:4000"
	if token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_Routes checks that the public routes are wired end to end.
*/
func TestServer_Routes(t *testing.T) {
	server := newTestServer(t, false, api.HealthDependencies{})

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "health", method: http.MethodGet, path: "/health", status: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK},
		{name: "regions", method: http.MethodGet, path: "/api/v1/regions", status: http.StatusOK},
		{name: "region", method: http.MethodGet, path: "/api/v1/regions/R", status: http.StatusOK},
		{name: "tours", method: http.MethodGet, path: "/api/v1/regions/R/tours", status: http.StatusOK},
		{name: "package", method: http.MethodGet, path: "/api/v1/regions/R/package?max_days=3&max_budget=150", status: http.StatusOK},
		{name: "bad_package_query", method: http.MethodGet, path: "/api/v1/regions/R/package?max_budget=-5", status: http.StatusBadRequest},
		{name: "admin_disabled", method: http.MethodPost, path: "/api/v1/admin/catalog/reload", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := server.do(tt.method, tt.path, "")
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}

/*
TestServer_PackageBody returns the reference package through the full stack.
*/
func TestServer_PackageBody(t *testing.T) {
	server := newTestServer(t, false, api.HealthDependencies{})

	recorder := server.do(http.MethodGet, "/api/v1/regions/R/package?max_days=3&max_budget=150", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Tours      []string `json:"tours"`
			TotalValue float64  `json:"total_value"`
			TotalCost  float64  `json:"total_cost"`
			TotalDays  int      `json:"total_days"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, []string{"A", "B"}, envelope.Data.Tours)
	assert.InDelta(t, 18, envelope.Data.TotalValue, 1e-9)
	assert.InDelta(t, 150, envelope.Data.TotalCost, 1e-9)
	assert.Equal(t, 3, envelope.Data.TotalDays)
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
}

/*
TestServer_AdminReload enforces the admin role on catalog reloads.
*/
func TestServer_AdminReload(t *testing.T) {
	server := newTestServer(t, true, api.HealthDependencies{})

	tests := []struct {
		name   string
		token  func() string
		status int
	}{
		{name: "anonymous", token: func() string { return "" }, status: http.StatusUnauthorized},
		{name: "garbage_token", token: func() string { return "not-a-jwt" }, status: http.StatusUnauthorized},
		{name: "operator", token: func() string { return server.token(t, string(sec.RoleOperator)) }, status: http.StatusForbidden},
		{name: "admin", token: func() string { return server.token(t, string(sec.RoleAdmin)) }, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := server.do(http.MethodPost, "/api/v1/admin/catalog/reload", tt.token())
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}

/*
TestServer_Readiness reports degraded dependencies with 503.
*/
func TestServer_Readiness(t *testing.T) {
	server := newTestServer(t, false, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("redis down") },
	})

	recorder := server.do(http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var envelope struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name string `json:"name"`
				OK   bool   `json:"ok"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "degraded", envelope.Data.Status)
	require.Len(t, envelope.Data.Checks, 2)
	assert.True(t, envelope.Data.Checks[0].OK)
	assert.False(t, envelope.Data.Checks[1].OK)
}
