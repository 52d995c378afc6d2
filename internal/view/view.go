package view

import (
	"residence-facilities/internal/catalog"
	"residence-facilities/internal/domain"
)

// Control is a category control as rendered in the filter bar.
type Control struct {
	Category domain.Category `json:"category"`
	Active   bool            `json:"active"`
	Variant  Variant         `json:"variant"`
	Count    int             `json:"count"`
}

// View is a single facilities page instance. Its selection is owned by the
// instance; the catalogs it reads are shared and never written.
type View struct {
	categories []domain.Category
	facilities []domain.Facility
	selection  Selection
}

// New builds a view over the static catalogs with the selection at "all".
func New() *View {
	return NewWith(catalog.Categories(), catalog.Facilities())
}

// NewWith builds a view over the given catalogs.
func NewWith(categories []domain.Category, facilities []domain.Facility) *View {
	return &View{
		categories: categories,
		facilities: facilities,
		selection:  NewSelection(),
	}
}

// Dispatch applies ev to the view's selection.
func (v *View) Dispatch(ev Event) {
	v.selection = Transition(v.selection, ev)
}

// Select is shorthand for dispatching SelectCategory.
func (v *View) Select(id string) {
	v.Dispatch(SelectCategory{ID: id})
}

// Active returns the current selection.
func (v *View) Active() Selection {
	return v.selection
}

// Visible returns the facilities matching the current selection.
func (v *View) Visible() []domain.Facility {
	return catalog.Filter(v.facilities, string(v.selection))
}

// Controls returns one control per category; the active one uses the primary
// variant.
func (v *View) Controls() []Control {
	counts := catalog.Counts(v.facilities)
	out := make([]Control, 0, len(v.categories))
	for _, c := range v.categories {
		ctrl := Control{
			Category: c,
			Active:   c.ID == string(v.selection),
			Variant:  VariantOutline,
			Count:    counts[c.ID],
		}
		if ctrl.Active {
			ctrl.Variant = VariantPrimary
		}
		out = append(out, ctrl)
	}
	return out
}

// CTAs returns the call-to-action buttons bound to nav.
func (v *View) CTAs(nav Navigator) []Button {
	out := make([]Button, 0, len(callsToAction))
	for _, c := range callsToAction {
		out = append(out, c.Button(nav))
	}
	return out
}
