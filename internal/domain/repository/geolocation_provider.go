package repository

import (
	"context"

	"github.com/ecoleta-discovery/internal/domain"
)

// GeolocationProvider is the device location service
type GeolocationProvider interface {
	// RequestPermission asks the user for foreground location access
	RequestPermission(ctx context.Context) (domain.PermissionStatus, error)

	// CurrentPosition resolves the device coordinates. Only valid after a grant.
	CurrentPosition(ctx context.Context) (lat, lon float64, err error)
}
