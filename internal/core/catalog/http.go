// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/itinera/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/itinera/internal/platform/request"
	"github.com/taibuivan/itinera/internal/platform/respond"
)

// Handler serves the read-only catalog endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a catalog handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the region routes on a router scoped to /regions.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listRegions)
	router.Get("/{id}", handler.getRegion)
	router.Get("/{id}/tours", handler.listRegionTours)
}

// AdminRoutes returns the operator routes, mounted under /admin.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/catalog/reload", handler.reload)
	return router
}

func (handler *Handler) listRegions(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListRegions(request.Context()))
}

func (handler *Handler) getRegion(writer http.ResponseWriter, request *http.Request) {
	region, err := handler.service.GetRegion(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, region)
}

func (handler *Handler) listRegionTours(writer http.ResponseWriter, request *http.Request) {
	tours, err := handler.service.ListRegionTours(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tours)
}

func (handler *Handler) reload(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Reload(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).Info("catalog_reloaded",
		slog.String("operator", claims.Subject),
		slog.String("version", summary.Version),
	)
	respond.OK(writer, summary)
}
