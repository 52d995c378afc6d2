package domain

// Facility is one amenity entry. Category is matched exactly against
// Category.ID; the remaining fields are display metadata.
type Facility struct {
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	BadgeLabel  string   `json:"badgeLabel,omitempty" yaml:"badgeLabel,omitempty"`
	BadgeStyle  string   `json:"badgeStyle,omitempty" yaml:"badgeStyle,omitempty"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	IconRef     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	ColorTag    string   `json:"color,omitempty" yaml:"color,omitempty"`
}

// Clone returns a copy of f that shares no slices with it.
func (f Facility) Clone() Facility {
	out := f
	if f.Features != nil {
		out.Features = append([]string(nil), f.Features...)
	}
	return out
}
