package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-facilities/internal/domain"
)

func TestCategories_StartsWithAll(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	assert.True(t, cats[0].IsAll())
	assert.Len(t, cats, 9)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[1].Label = "changed"
	assert.Equal(t, "Olahraga", Categories()[1].Label)
}

func TestFacilities_ReturnsDeepCopy(t *testing.T) {
	items := Facilities()
	items[0].Title = "changed"
	items[0].Features[0] = "changed"

	fresh := Facilities()
	assert.Equal(t, "Fitness Center", fresh[0].Title)
	assert.NotEqual(t, "changed", fresh[0].Features[0])
}

func TestFacilities_KeepsBlankFeature(t *testing.T) {
	items := Filter(Facilities(), "Minimarket")
	require.Len(t, items, 1)
	feats := items[0].Features
	require.NotEmpty(t, feats)
	assert.Equal(t, "", feats[len(feats)-1])
}

func TestCategory_Lookup(t *testing.T) {
	c, ok := Category("keamanan")
	require.True(t, ok)
	assert.Equal(t, "Keamanan", c.Label)

	_, ok = Category("Keamanan")
	assert.False(t, ok)
}

func TestCounts(t *testing.T) {
	counts := Counts(Facilities())
	assert.Equal(t, 12, counts[domain.CategoryAll])
	assert.Equal(t, 2, counts["olahraga"])
	assert.Equal(t, 2, counts["keamanan"])
	assert.Equal(t, 1, counts["cafe"])
	assert.Equal(t, 0, counts["minimarket"])
	assert.Equal(t, 1, counts["Minimarket"])
}
