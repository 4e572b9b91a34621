package geolocation

import (
	"context"
	"testing"

	"github.com/ecoleta-discovery/internal/config"
	"github.com/ecoleta-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("granted returns configured coordinates", func(t *testing.T) {
		p := NewStaticProvider(&config.DeviceConfig{Permission: "granted", Latitude: -8.47, Longitude: -35.73}, logger)

		status, err := p.RequestPermission(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.PermissionGranted, status)

		lat, lon, err := p.CurrentPosition(ctx)
		require.NoError(t, err)
		assert.Equal(t, -8.47, lat)
		assert.Equal(t, -35.73, lon)
	})

	t.Run("denied refuses position", func(t *testing.T) {
		p := NewStaticProvider(&config.DeviceConfig{Permission: "denied"}, logger)

		status, err := p.RequestPermission(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.PermissionDenied, status)

		_, _, err = p.CurrentPosition(ctx)
		assert.Error(t, err)
	})

	t.Run("permission follows device config", func(t *testing.T) {
		for perm, want := range map[string]domain.PermissionStatus{
			"granted": domain.PermissionGranted,
			"denied":  domain.PermissionDenied,
			"":        domain.PermissionDenied,
		} {
			cfg := &config.DeviceConfig{Permission: perm}
			status, err := NewStaticProvider(cfg, logger).RequestPermission(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, status, "permission %q", perm)
			assert.Equal(t, cfg.LocationGranted(), status == domain.PermissionGranted)
		}
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		p := NewStaticProvider(&config.DeviceConfig{Permission: "granted", Latitude: 120}, logger)

		_, _, err := p.CurrentPosition(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid device coordinates")
	})

	t.Run("cancelled context", func(t *testing.T) {
		p := NewStaticProvider(&config.DeviceConfig{Permission: "granted"}, logger)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := p.RequestPermission(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
