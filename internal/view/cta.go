package view

import (
	"fmt"

	"residence-facilities/internal/domain"
)

// Navigator moves the host to another page. Routing failures are the
// navigator's concern.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }

// CallToAction is a static CTA definition.
type CallToAction struct {
	ID            string
	Label         string
	Variant       Variant
	Size          Size
	StyleOverride string
	Target        string
}

var callsToAction = []CallToAction{
	{
		ID:      "apartments",
		Label:   "Lihat Unit Apartemen",
		Variant: VariantPrimary,
		Size:    SizeLg,
		Target:  "/apartments",
	},
	{
		ID:            "location",
		Label:         "Lihat Lokasi",
		Variant:       VariantOutline,
		Size:          SizeLg,
		StyleOverride: "border-white text-white hover:bg-white hover:text-primary",
		Target:        "/location",
	},
}

// CallsToAction returns the CTA definitions in display order.
func CallsToAction() []CallToAction {
	return append([]CallToAction(nil), callsToAction...)
}

// CTA looks up a call-to-action by id.
func CTA(id string) (CallToAction, error) {
	for _, c := range callsToAction {
		if c.ID == id {
			return c, nil
		}
	}
	return CallToAction{}, fmt.Errorf("cta %q: %w", id, domain.ErrNotFound)
}

// Button binds the CTA to nav.
func (c CallToAction) Button(nav Navigator) Button {
	target := c.Target
	return Button{
		ID:            c.ID,
		Variant:       c.Variant,
		Size:          c.Size,
		Label:         c.Label,
		StyleOverride: c.StyleOverride,
		Target:        target,
		OnActivate:    func() { nav.NavigateTo(target) },
	}
}
