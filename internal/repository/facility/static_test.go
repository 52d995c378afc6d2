package facility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ListIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewStatic(nil)

	first, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 12)
	first[0].Title = "mutated"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fitness Center", second[0].Title)
}
