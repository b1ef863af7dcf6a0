package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAddsAndRemovesInMultiMode(t *testing.T) {
	s := NewFilterState()

	s.ToggleCategory("Конфеты", SelectionMulti)
	s.ToggleCategory("Мука", SelectionMulti)
	assert.Equal(t, []string{"Конфеты", "Мука"}, s.Categories)

	s.ToggleCategory("Конфеты", SelectionMulti)
	assert.Equal(t, []string{"Мука"}, s.Categories)

	s.ToggleManufacturer("M1", SelectionMulti)
	s.ToggleManufacturer("M2", SelectionMulti)
	assert.Equal(t, []string{"M1", "M2"}, s.Manufacturers)
}

func TestHierarchicalManufacturerReplacesAndCascades(t *testing.T) {
	s := NewFilterState()

	s.ToggleManufacturer("M1", SelectionHierarchical)
	s.ToggleCategory("Конфеты", SelectionHierarchical)
	s.ToggleType("Карамель", SelectionHierarchical)

	s.ToggleManufacturer("M2", SelectionHierarchical)

	assert.Equal(t, []string{"M2"}, s.Manufacturers)
	assert.Empty(t, s.Categories)
	assert.Empty(t, s.Types)
}

func TestHierarchicalManufacturerReselectDeselects(t *testing.T) {
	s := NewFilterState()

	s.ToggleManufacturer("M1", SelectionHierarchical)
	s.ToggleManufacturer("M1", SelectionHierarchical)

	assert.Empty(t, s.Manufacturers)
}

func TestHierarchicalCategoryCascadesTypeReset(t *testing.T) {
	s := NewFilterState()

	s.ToggleCategory("Конфеты", SelectionHierarchical)
	s.ToggleType("Карамель", SelectionHierarchical)
	s.ToggleCategory("Мука", SelectionHierarchical)

	assert.Empty(t, s.Types)
	assert.Equal(t, []string{"Конфеты", "Мука"}, s.Categories)
}

func TestAnyFilterChangeResetsPage(t *testing.T) {
	s := NewFilterState()
	s.Page = 7

	s.ToggleCategory("Чай", SelectionMulti)
	assert.Equal(t, 1, s.Page)

	s.Page = 5
	s.SetSearchQuery("сахар")
	assert.Equal(t, 1, s.Page)

	s.Page = 3
	s.SetPageSize(96)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 96, s.PageSize)
}

func TestClearResetsEverything(t *testing.T) {
	s := NewFilterState()
	s.ToggleCategory("Чай", SelectionMulti)
	s.ToggleType("Листовой", SelectionMulti)
	s.ToggleManufacturer("M1", SelectionMulti)
	s.SetSearchQuery("зелёный")
	s.Sort = SortPriceDesc
	s.Page = 4

	s.Clear()

	assert.False(t, s.HasActiveFilters())
	assert.Empty(t, s.Categories)
	assert.Empty(t, s.Types)
	assert.Empty(t, s.Manufacturers)
	assert.Equal(t, "", s.SearchQuery)
	assert.Equal(t, SortDefault, s.Sort)
	assert.Equal(t, 1, s.Page)
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, 24, NormalizePageSize(24))
	assert.Equal(t, 192, NormalizePageSize(192))
	assert.Equal(t, DefaultPageSize, NormalizePageSize(0))
	assert.Equal(t, DefaultPageSize, NormalizePageSize(50))
	assert.Equal(t, DefaultPageSize, NormalizePageSize(-1))
}
