package facility

import (
	"context"

	"residence-facilities/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Facility, error)
}
