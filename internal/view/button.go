package view

// Variant is a button style variant.
type Variant string

const (
	VariantPrimary Variant = "primary"
	VariantOutline Variant = "outline"
)

// Size is a button size.
type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

// Button is the configuration handed to a presentational button widget.
type Button struct {
	ID            string  `json:"id"`
	Variant       Variant `json:"variant"`
	Size          Size    `json:"size"`
	Label         string  `json:"label"`
	StyleOverride string  `json:"styleOverride,omitempty"`
	Target        string  `json:"target,omitempty"`

	OnActivate func() `json:"-"`
}

// Activate runs the click handler once. A button without a handler is inert.
func (b Button) Activate() {
	if b.OnActivate != nil {
		b.OnActivate()
	}
}
