package domain

// CategoryAll is the reserved category id meaning "no filter".
const CategoryAll = "all"

// Category describes one filter group shown as a category control.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// IsAll reports whether c is the reserved no-filter category.
func (c Category) IsAll() bool {
	return c.ID == CategoryAll
}
