package repository

import (
	"context"

	"github.com/ecoleta-discovery/internal/domain"
)

// PointRepository searches and loads collection points
type PointRepository interface {
	// SearchPoints returns the points of a city accepting any of the given items
	SearchPoints(ctx context.Context, search domain.PointSearch) ([]domain.CollectionPoint, error)

	// GetPoint returns a single point with the titles of its items
	GetPoint(ctx context.Context, id int64) (*domain.PointDetail, error)
}
