// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and query
parsing, so that malformed input is always reported as a VALIDATION_ERROR
naming the offending field.
*/
package requestutil

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/itinera/internal/platform/apperr"
	"github.com/taibuivan/itinera/internal/platform/ctxutil"
	"github.com/taibuivan/itinera/internal/platform/sec"
	"github.com/taibuivan/itinera/internal/platform/validate"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
OptionalInt parses an optional integer query parameter.

Returns:
  - *int: nil when the parameter is absent or empty
  - error: VALIDATION_ERROR naming the parameter if it is not an integer
*/
func OptionalInt(request *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validate.FieldError(name, "Must be an integer")
	}
	return &value, nil
}

/*
OptionalFloat parses an optional decimal query parameter.

Returns:
  - *float64: nil when the parameter is absent or empty
  - error: VALIDATION_ERROR naming the parameter if it is not a finite number
*/
func OptionalFloat(request *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, validate.FieldError(name, "Must be a finite number")
	}
	return &value, nil
}

/*
RequiredClaims ensures the request is authenticated and returns the claims.

Returns:
  - *sec.AuthClaims: The verified operator claims
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
