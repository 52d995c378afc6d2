package facility

import (
	"context"
	"fmt"

	"residence-facilities/internal/catalog"
	"residence-facilities/internal/domain"
	categoryrepo "residence-facilities/internal/repository/category"
	facilityrepo "residence-facilities/internal/repository/facility"
	"residence-facilities/internal/view"
)

// Page is the facilities page state for one selection.
type Page struct {
	Active     string            `json:"active"`
	Controls   []view.Control    `json:"categories"`
	Facilities []domain.Facility `json:"facilities"`
	CTAs       []view.Button     `json:"cta"`
}

type Service struct {
	categories categoryrepo.Repository
	facilities facilityrepo.Repository
}

func New(categories categoryrepo.Repository, facilities facilityrepo.Repository) *Service {
	return &Service{categories: categories, facilities: facilities}
}

// List returns the facilities visible under selection. An empty selection
// means "all".
func (s *Service) List(ctx context.Context, selection string) ([]domain.Facility, error) {
	items, err := s.facilities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return catalog.Filter(items, normalize(selection)), nil
}

// Counts returns the number of facilities per category id.
func (s *Service) Counts(ctx context.Context) (map[string]int, error) {
	items, err := s.facilities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return catalog.Counts(items), nil
}

// Page builds the page state as it looks after the category control for
// selection was activated. CTA buttons are bound to nav.
func (s *Service) Page(ctx context.Context, selection string, nav view.Navigator) (*Page, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items, err := s.facilities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	v := view.NewWith(cats, items)
	v.Dispatch(view.SelectCategory{ID: normalize(selection)})

	return &Page{
		Active:     string(v.Active()),
		Controls:   v.Controls(),
		Facilities: v.Visible(),
		CTAs:       v.CTAs(nav),
	}, nil
}

// Activate presses the CTA button with the given id, which hands its target
// path to nav.
func (s *Service) Activate(_ context.Context, ctaID string, nav view.Navigator) (view.CallToAction, error) {
	cta, err := view.CTA(ctaID)
	if err != nil {
		return view.CallToAction{}, err
	}
	cta.Button(nav).Activate()
	return cta, nil
}

func normalize(selection string) string {
	if selection == "" {
		return domain.CategoryAll
	}
	return selection
}
