package catalog

// SelectionMode controls the facet selection state machine.
//
// SelectionMulti: every dimension is an independent multi-select toggle.
// SelectionHierarchical: manufacturer is single-select-with-replace and
// cascades a reset of category and type; category cascades a reset of type.
type SelectionMode int

const (
	SelectionMulti SelectionMode = iota
	SelectionHierarchical
)

// ParseSelectionMode maps a config string to a SelectionMode,
// defaulting to multi-select.
func ParseSelectionMode(s string) SelectionMode {
	if s == "hierarchical" {
		return SelectionHierarchical
	}
	return SelectionMulti
}

type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
)

// PageSizes is the fixed set of allowed page sizes.
var PageSizes = []int{24, 48, 96, 192}

const DefaultPageSize = 48

// FilterState is the transient per-session browsing state. The subcategory
// and type filters of earlier storefront variants alias the same underlying
// field, so they are collapsed into the single Types dimension here.
// View mode is presentation-only and deliberately not part of this state.
type FilterState struct {
	Categories    []string   `json:"categories"`
	Types         []string   `json:"types"`
	Manufacturers []string   `json:"manufacturers"`
	SearchQuery   string     `json:"search"`
	Sort          SortOption `json:"sort"`
	Page          int        `json:"page"`
	PageSize      int        `json:"page_size"`
}

// NewFilterState returns an empty state on page 1 with the default page size.
func NewFilterState() FilterState {
	return FilterState{Page: 1, PageSize: DefaultPageSize, Sort: SortDefault}
}

// HasActiveFilters reports whether any selection set or the search query
// is non-empty.
func (s *FilterState) HasActiveFilters() bool {
	return len(s.Categories) > 0 || len(s.Types) > 0 ||
		len(s.Manufacturers) > 0 || s.SearchQuery != ""
}

// Clear resets every selection set, the search query, sorting and
// pagination back to the initial state.
func (s *FilterState) Clear() {
	s.Categories = nil
	s.Types = nil
	s.Manufacturers = nil
	s.SearchQuery = ""
	s.Sort = SortDefault
	s.Page = 1
}

// ToggleCategory adds or removes a category selection. In hierarchical
// mode a category change cascades a reset of the type selection.
func (s *FilterState) ToggleCategory(name string, mode SelectionMode) {
	s.Categories = toggleValue(s.Categories, name)
	if mode == SelectionHierarchical {
		s.Types = nil
	}
	s.Page = 1
}

// ToggleType adds or removes a type (subcategory) selection.
func (s *FilterState) ToggleType(name string, mode SelectionMode) {
	s.Types = toggleValue(s.Types, name)
	s.Page = 1
}

// ToggleManufacturer changes the manufacturer selection. Multi-select mode
// toggles membership; hierarchical mode replaces the whole selection
// (single-select at the top level) and cascades a reset of category and
// type selections.
func (s *FilterState) ToggleManufacturer(name string, mode SelectionMode) {
	if mode == SelectionHierarchical {
		if len(s.Manufacturers) == 1 && s.Manufacturers[0] == name {
			s.Manufacturers = nil
		} else {
			s.Manufacturers = []string{name}
		}
		s.Categories = nil
		s.Types = nil
	} else {
		s.Manufacturers = toggleValue(s.Manufacturers, name)
	}
	s.Page = 1
}

// SetSearchQuery updates the free-text query and resets pagination.
func (s *FilterState) SetSearchQuery(q string) {
	s.SearchQuery = q
	s.Page = 1
}

// SetPageSize switches the page size and resets pagination. Sizes outside
// the allowed set fall back to the default.
func (s *FilterState) SetPageSize(size int) {
	s.PageSize = NormalizePageSize(size)
	s.Page = 1
}

// NormalizePageSize clamps a requested page size to the allowed set.
func NormalizePageSize(size int) int {
	for _, allowed := range PageSizes {
		if size == allowed {
			return size
		}
	}
	return DefaultPageSize
}

func toggleValue(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
