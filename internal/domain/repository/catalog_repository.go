package repository

import (
	"context"

	"github.com/ecoleta-discovery/internal/domain"
)

// CatalogRepository provides the static list of material categories
type CatalogRepository interface {
	// ListItems returns every category known to the server
	ListItems(ctx context.Context) ([]domain.Category, error)
}
