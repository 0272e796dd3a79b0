package schema

// CatalogAttractionTable represents the 'catalog.attraction' table
type CatalogAttractionTable struct {
	Table         string
	Bare          string
	ID            string
	Name          string
	CulturalValue string
}

// CatalogAttraction is the schema definition for catalog.attraction
var CatalogAttraction = CatalogAttractionTable{
	Table:         "catalog.attraction",
	Bare:          "attraction",
	ID:            "id",
	Name:          "name",
	CulturalValue: "culturalvalue",
}
