// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/itinera/internal/core/catalog"
	requestutil "github.com/taibuivan/itinera/internal/platform/request"
	"github.com/taibuivan/itinera/internal/platform/respond"
	"github.com/taibuivan/itinera/pkg/slice"
)

// PackageResponse is the JSON representation of a [Package].
type PackageResponse struct {
	RegionID       string          `json:"region_id"`
	Tours          []string        `json:"tours"`
	TourDetails    []*catalog.Tour `json:"tour_details"`
	TotalDays      int             `json:"total_days"`
	TotalCost      float64         `json:"total_cost"`
	TotalValue     float64         `json:"total_value"`
	CatalogVersion string          `json:"catalog_version"`
	Cached         bool            `json:"cached"`
	Stats          Stats           `json:"stats"`
}

// NewPackageResponse converts a package for the wire.
func NewPackageResponse(pkg *Package) PackageResponse {
	tours := pkg.Tours
	if tours == nil {
		tours = []*catalog.Tour{}
	}

	return PackageResponse{
		RegionID:       pkg.RegionID,
		Tours:          slice.Map(tours, tourID),
		TourDetails:    tours,
		TotalDays:      pkg.TotalDays,
		TotalCost:      pkg.TotalCost,
		TotalValue:     pkg.TotalValue,
		CatalogVersion: pkg.CatalogVersion,
		Cached:         pkg.Cached,
		Stats:          pkg.Stats,
	}
}

// Handler serves package generation.
type Handler struct {
	service *Service
}

// NewHandler creates a planner handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the planner routes on a router scoped to /regions.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}/package", handler.generatePackage)
}

func (handler *Handler) generatePackage(writer http.ResponseWriter, request *http.Request) {
	maxDays, err := requestutil.OptionalInt(request, "max_days")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	maxBudget, err := requestutil.OptionalFloat(request, "max_budget")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pkg, err := handler.service.GeneratePackage(request.Context(), requestutil.Param(request, "id"), Constraints{
		MaxDays:   maxDays,
		MaxBudget: maxBudget,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, NewPackageResponse(pkg))
}
