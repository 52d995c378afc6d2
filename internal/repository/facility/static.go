package facility

import (
	"context"

	"go.uber.org/zap"

	"residence-facilities/internal/catalog"
	"residence-facilities/internal/domain"
)

type staticRepo struct {
	logger *zap.Logger
}

// NewStatic serves facilities from the compiled-in catalog. Each call to List
// returns a fresh copy, so callers may not alter the shared data.
func NewStatic(logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &staticRepo{logger: logger}
}

func (r *staticRepo) List(_ context.Context) ([]domain.Facility, error) {
	items := catalog.Facilities()
	r.logger.Debug("facility repo: list", zap.Int("count", len(items)))
	return items, nil
}
