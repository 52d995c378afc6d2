package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-facilities/internal/domain"
)

func TestCheck_StaticCatalogFlagsMinimarketCasing(t *testing.T) {
	issues := Check(Categories(), Facilities())

	require.Len(t, issues, 2)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "facility Minimarket", issues[0].Subject)
	assert.Contains(t, issues[0].Message, `"Minimarket" differs only in case from "minimarket"`)

	assert.Equal(t, SeverityInfo, issues[1].Severity)
	assert.Contains(t, issues[1].Message, "feature 2 is blank")

	assert.True(t, HasWarnings(issues))
}

func TestCheck_DoesNotFixData(t *testing.T) {
	items := Facilities()
	_ = Check(Categories(), items)
	assert.Equal(t, "Minimarket", items[11].Category)
}

func TestCheck_Findings(t *testing.T) {
	cats := []domain.Category{
		{ID: "gym", Label: "Gym"},
		{ID: "gym", Label: "Gym again"},
	}
	items := []domain.Facility{
		{Title: "A", Category: "gym", Features: []string{"ok"}},
		{Title: "A", Category: "spa"},
		{Title: "B", Category: domain.CategoryAll},
	}

	issues := Check(cats, items)
	var msgs []string
	for _, i := range issues {
		msgs = append(msgs, i.String())
	}
	joined := strings.Join(msgs, "\n")

	assert.Contains(t, joined, "duplicate category id")
	assert.Contains(t, joined, `missing reserved "all" category`)
	assert.Contains(t, joined, "duplicate title")
	assert.Contains(t, joined, `unknown category "spa"`)
	assert.Contains(t, joined, `tagged with reserved category "all"`)
}

func TestCheck_CleanCatalog(t *testing.T) {
	cats := []domain.Category{{ID: domain.CategoryAll, Label: "All"}, {ID: "gym", Label: "Gym"}}
	items := []domain.Facility{{Title: "A", Category: "gym", Features: []string{"x"}}}

	issues := Check(cats, items)
	assert.Empty(t, issues)
	assert.False(t, HasWarnings(issues))
}
