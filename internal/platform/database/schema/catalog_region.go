package schema

// CatalogRegionTable represents the 'catalog.region' table
type CatalogRegionTable struct {
	Table       string
	Bare        string
	ID          string
	Name        string
	Slug        string
	Description string
}

// CatalogRegion is the schema definition for catalog.region
var CatalogRegion = CatalogRegionTable{
	Table:       "catalog.region",
	Bare:        "region",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
}
