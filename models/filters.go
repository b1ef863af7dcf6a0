// models/filters.go
package models

// FacetValue is a single selectable facet option with its product count.
type FacetValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryFacet is a category option with the per-type breakdown of the
// products inside it (the subcategory field drives the nested counts).
type CategoryFacet struct {
	Name  string       `json:"name"`
	Count int          `json:"count"`
	Types []FacetValue `json:"types,omitempty"`
}

// FacetMetadata represents all filter data for the storefront sidebar.
type FacetMetadata struct {
	Manufacturers []FacetValue    `json:"manufacturers"`
	Categories    []CategoryFacet `json:"categories"`
	Types         []FacetValue    `json:"types"`
}
