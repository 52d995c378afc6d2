package category

import (
	"context"

	"go.uber.org/zap"

	"residence-facilities/internal/catalog"
	"residence-facilities/internal/domain"
)

type staticRepo struct {
	logger *zap.Logger
}

// NewStatic serves categories from the compiled-in catalog.
func NewStatic(logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &staticRepo{logger: logger}
}

func (r *staticRepo) List(_ context.Context) ([]domain.Category, error) {
	cats := catalog.Categories()
	r.logger.Debug("category repo: list", zap.Int("count", len(cats)))
	return cats, nil
}

func (r *staticRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := catalog.Category(id)
	if !ok {
		r.logger.Debug("category repo: get not found", zap.String("id", id))
		return nil, domain.ErrNotFound
	}
	return &c, nil
}
