package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-facilities/internal/domain"
)

func TestStatic_ListAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStatic(nil)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, domain.CategoryAll, list[0].ID)

	got, err := repo.GetByID(ctx, "teknologi")
	require.NoError(t, err)
	assert.Equal(t, "Teknologi", got.Label)
}

func TestStatic_GetMissing(t *testing.T) {
	_, err := NewStatic(nil).GetByID(context.Background(), "Olahraga")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
