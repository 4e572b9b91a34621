package geolocation

import (
	"context"
	"fmt"

	"github.com/ecoleta-discovery/internal/config"
	"github.com/ecoleta-discovery/internal/domain"
	"github.com/ecoleta-discovery/internal/domain/repository"
	"github.com/ecoleta-discovery/internal/pkg/utils"
	"go.uber.org/zap"
)

var _ repository.GeolocationProvider = (*StaticProvider)(nil)

// StaticProvider answers location requests from configuration, standing in
// for the device location service when the client runs headless.
type StaticProvider struct {
	permission domain.PermissionStatus
	lat, lon   float64
	logger     *zap.Logger
}

func NewStaticProvider(cfg *config.DeviceConfig, logger *zap.Logger) *StaticProvider {
	permission := domain.PermissionDenied
	if cfg.LocationGranted() {
		permission = domain.PermissionGranted
	}

	return &StaticProvider{
		permission: permission,
		lat:        cfg.Latitude,
		lon:        cfg.Longitude,
		logger:     logger,
	}
}

func (p *StaticProvider) RequestPermission(ctx context.Context) (domain.PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.logger.Debug("Location permission requested", zap.String("status", string(p.permission)))
	return p.permission, nil
}

func (p *StaticProvider) CurrentPosition(ctx context.Context) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if p.permission != domain.PermissionGranted {
		return 0, 0, fmt.Errorf("location permission not granted")
	}
	if !utils.ValidateCoordinates(p.lat, p.lon) {
		return 0, 0, fmt.Errorf("invalid device coordinates: %f,%f", p.lat, p.lon)
	}

	return p.lat, p.lon, nil
}
