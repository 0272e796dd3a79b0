package schema

// CatalogTourTable represents the 'catalog.tour' table
type CatalogTourTable struct {
	Table        string
	Bare         string
	ID           string
	RegionID     string
	Name         string
	DurationDays string
	Cost         string
}

// CatalogTour is the schema definition for catalog.tour
var CatalogTour = CatalogTourTable{
	Table:        "catalog.tour",
	Bare:         "tour",
	ID:           "id",
	RegionID:     "regionid",
	Name:         "name",
	DurationDays: "durationdays",
	Cost:         "cost",
}
