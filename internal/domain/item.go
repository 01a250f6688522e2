package domain

// CatalogItem is a row of the static item catalog.
type CatalogItem struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Level    int    `json:"level"`
	ImageURL string `json:"image_url,omitempty"`
}

// ItemFilter narrows a catalog listing. Empty fields match everything.
type ItemFilter struct {
	Category string
	Type     string
}

// Matches reports whether item satisfies the filter.
func (f ItemFilter) Matches(item CatalogItem) bool {
	if f.Category != "" && f.Category != item.Category {
		return false
	}
	if f.Type != "" && f.Type != item.Type {
		return false
	}
	return true
}
