package schema

// CatalogTourAttractionTable represents the 'catalog.tourattraction' junction table
type CatalogTourAttractionTable struct {
	Table        string
	Bare         string
	TourID       string
	AttractionID string
}

// CatalogTourAttraction is the schema definition for catalog.tourattraction
var CatalogTourAttraction = CatalogTourAttractionTable{
	Table:        "catalog.tourattraction",
	Bare:         "tourattraction",
	TourID:       "tourid",
	AttractionID: "attractionid",
}
