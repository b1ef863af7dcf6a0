package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Paida-All/paidaall-store-backend/models"
)

// Sentinel labels substituted for absent fields. They exist for display
// and selection only and are never written back to a product record.
const (
	CategoryFallback     = "Без категории"
	ManufacturerFallback = "Без производителя"
)

// FacetCategory returns the category with sentinel substitution.
func FacetCategory(p *models.Product) string {
	if p.Category == "" {
		return CategoryFallback
	}
	return p.Category
}

// FacetManufacturer returns the producer with sentinel substitution.
func FacetManufacturer(p *models.Product) string {
	if p.Producer == "" {
		return ManufacturerFallback
	}
	return p.Producer
}

// Aggregate derives the manufacturer, category and type facet lists with
// counts from a non-archived product set.
//
// Manufacturer counts always cover the full set, so sibling options stay
// visible regardless of the current manufacturer selection. In hierarchical
// mode category counts are narrowed to the selected manufacturers and type
// counts to the selected manufacturers and categories; in multi mode all
// three dimensions count over the full set. Products without a subcategory
// do not contribute a type bucket.
//
// Facet values are ordered by Russian collation, matching the catalog's
// language.
func Aggregate(products []models.Product, state FilterState, mode SelectionMode) models.FacetMetadata {
	manufacturers := make(map[string]int)
	for i := range products {
		manufacturers[FacetManufacturer(&products[i])]++
	}

	categoryScope := products
	if mode == SelectionHierarchical && len(state.Manufacturers) > 0 {
		categoryScope = filterByManufacturer(products, state.Manufacturers)
	}

	categories := make(map[string]int)
	typesPerCategory := make(map[string]map[string]int)
	for i := range categoryScope {
		p := &categoryScope[i]
		cat := FacetCategory(p)
		categories[cat]++
		if p.Subcategory != "" {
			if typesPerCategory[cat] == nil {
				typesPerCategory[cat] = make(map[string]int)
			}
			typesPerCategory[cat][p.Subcategory]++
		}
	}

	typeScope := categoryScope
	if mode == SelectionHierarchical && len(state.Categories) > 0 {
		typeScope = filterByCategory(categoryScope, state.Categories)
	}

	types := make(map[string]int)
	for i := range typeScope {
		if typeScope[i].Subcategory != "" {
			types[typeScope[i].Subcategory]++
		}
	}

	cl := collate.New(language.Russian)

	meta := models.FacetMetadata{
		Manufacturers: sortedFacetValues(manufacturers, cl),
		Types:         sortedFacetValues(types, cl),
	}
	for name, count := range categories {
		meta.Categories = append(meta.Categories, models.CategoryFacet{
			Name:  name,
			Count: count,
			Types: sortedFacetValues(typesPerCategory[name], cl),
		})
	}
	sort.Slice(meta.Categories, func(i, j int) bool {
		return cl.CompareString(meta.Categories[i].Name, meta.Categories[j].Name) < 0
	})

	return meta
}

func sortedFacetValues(counts map[string]int, cl *collate.Collator) []models.FacetValue {
	if len(counts) == 0 {
		return nil
	}
	values := make([]models.FacetValue, 0, len(counts))
	for name, count := range counts {
		values = append(values, models.FacetValue{Name: name, Count: count})
	}
	sort.Slice(values, func(i, j int) bool {
		return cl.CompareString(values[i].Name, values[j].Name) < 0
	})
	return values
}

func filterByManufacturer(products []models.Product, selected []string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if contains(selected, FacetManufacturer(&products[i])) {
			out = append(out, products[i])
		}
	}
	return out
}

func filterByCategory(products []models.Product, selected []string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if contains(selected, FacetCategory(&products[i])) {
			out = append(out, products[i])
		}
	}
	return out
}
