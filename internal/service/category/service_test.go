package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-facilities/internal/domain"
	categoryrepo "residence-facilities/internal/repository/category"
)

func TestService_ListAndGet(t *testing.T) {
	svc := New(categoryrepo.NewStatic(nil))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 9)

	c, err := svc.Get(context.Background(), "sosial")
	require.NoError(t, err)
	assert.Equal(t, "Sosial", c.Label)

	_, err = svc.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
