package facility

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-facilities/internal/domain"
	categoryrepo "residence-facilities/internal/repository/category"
	facilityrepo "residence-facilities/internal/repository/facility"
	"residence-facilities/internal/view"
)

type failingFacilityRepo struct{}

func (failingFacilityRepo) List(context.Context) ([]domain.Facility, error) {
	return nil, errors.New("boom")
}

func newService() *Service {
	return New(categoryrepo.NewStatic(nil), facilityrepo.NewStatic(nil))
}

func TestService_ListDefaultsToAll(t *testing.T) {
	items, err := newService().List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, items, 12)
}

func TestService_ListFilters(t *testing.T) {
	items, err := newService().List(context.Background(), "olahraga")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Fitness Center", items[0].Title)
	assert.Equal(t, "Swimming Pool", items[1].Title)
}

func TestService_ListRepoError(t *testing.T) {
	svc := New(categoryrepo.NewStatic(nil), failingFacilityRepo{})
	_, err := svc.List(context.Background(), "all")
	assert.ErrorContains(t, err, "list facilities: boom")
}

func TestService_Page(t *testing.T) {
	page, err := newService().Page(context.Background(), "cafe", view.NavigatorFunc(func(string) {}))
	require.NoError(t, err)

	assert.Equal(t, "cafe", page.Active)
	require.Len(t, page.Facilities, 1)
	assert.Equal(t, "Rooftop Cafe", page.Facilities[0].Title)
	require.Len(t, page.CTAs, 2)
	assert.Equal(t, "/apartments", page.CTAs[0].Target)

	for _, c := range page.Controls {
		assert.Equal(t, c.Category.ID == "cafe", c.Active)
	}
}

func TestService_PageUnknownCategory(t *testing.T) {
	page, err := newService().Page(context.Background(), "minimarket", view.NavigatorFunc(func(string) {}))
	require.NoError(t, err)
	assert.Equal(t, "minimarket", page.Active)
	assert.NotNil(t, page.Facilities)
	assert.Empty(t, page.Facilities)
}

func TestService_Activate(t *testing.T) {
	var got []string
	nav := view.NavigatorFunc(func(path string) { got = append(got, path) })

	cta, err := newService().Activate(context.Background(), "apartments", nav)
	require.NoError(t, err)
	assert.Equal(t, "apartments", cta.ID)
	assert.Equal(t, []string{"/apartments"}, got)

	_, err = newService().Activate(context.Background(), "nope", nav)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Len(t, got, 1)
}

func TestService_Counts(t *testing.T) {
	counts, err := newService().Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counts["rekreasi"])
}
