package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("environment only with defaults", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("API_BASE_URL", "http://192.168.0.106:3333/")
		t.Setenv("SEARCH_CITY", "Caruaru")
		t.Setenv("SEARCH_UF", "pe")
		t.Setenv("DEVICE_LATITUDE", "-8.47")
		t.Setenv("DEVICE_LONGITUDE", "-35.73")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://192.168.0.106:3333", cfg.API.BaseURL)
		assert.Equal(t, time.Duration(0), cfg.API.FetchTimeout)
		assert.Equal(t, "PE", cfg.Search.UF)
		assert.Equal(t, 8080, cfg.Bridge.Port)
		assert.Equal(t, ":8080", cfg.GetBridgeAddr())
		assert.True(t, cfg.Device.LocationGranted())
		assert.Equal(t, "info", cfg.Log.Level)
		assert.InDelta(t, -8.47, cfg.Device.Latitude, 1e-9)
	})

	t.Run("timeout and denied permission", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("API_BASE_URL", "http://localhost:3333")
		t.Setenv("SEARCH_CITY", "Recife")
		t.Setenv("SEARCH_UF", "PE")
		t.Setenv("FETCH_TIMEOUT_MS", "2500")
		t.Setenv("DEVICE_LOCATION_PERMISSION", "DENIED")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 2500*time.Millisecond, cfg.API.FetchTimeout)
		assert.False(t, cfg.Device.LocationGranted())
	})

	t.Run("missing base url", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("API_BASE_URL", "")
		t.Setenv("SEARCH_CITY", "Recife")
		t.Setenv("SEARCH_UF", "PE")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
