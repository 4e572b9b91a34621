package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ecoleta-discovery/internal/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	API    APIConfig
	Bridge BridgeConfig
	Search SearchConfig
	Device DeviceConfig
	Log    LogConfig
}

// APIConfig describes the collection point backend.
type APIConfig struct {
	BaseURL string `validate:"required,url"`
	// FetchTimeout bounds every catalog, location and point fetch.
	// Zero disables the bound and fetches may stay pending indefinitely.
	FetchTimeout time.Duration
}

// BridgeConfig is the HTTP server the renderer talks to.
type BridgeConfig struct {
	Host string
	Port int `validate:"min=1,max=65535"`
	Env  string
}

// SearchConfig carries the navigation parameters of the points screen.
type SearchConfig struct {
	City string `validate:"required"`
	UF   string `validate:"required,len=2"`
}

type DeviceConfig struct {
	Permission string  `validate:"oneof=granted denied"`
	Latitude   float64 `validate:"min=-90,max=90"`
	Longitude  float64 `validate:"min=-180,max=180"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional, the environment alone is enough
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:      strings.TrimRight(viper.GetString("API_BASE_URL"), "/"),
			FetchTimeout: time.Duration(viper.GetInt("FETCH_TIMEOUT_MS")) * time.Millisecond,
		},
		Bridge: BridgeConfig{
			Host: viper.GetString("BRIDGE_HOST"),
			Port: viper.GetInt("BRIDGE_PORT"),
			Env:  viper.GetString("BRIDGE_ENV"),
		},
		Search: SearchConfig{
			City: viper.GetString("SEARCH_CITY"),
			UF:   strings.ToUpper(viper.GetString("SEARCH_UF")),
		},
		Device: DeviceConfig{
			Permission: strings.ToLower(viper.GetString("DEVICE_LOCATION_PERMISSION")),
			Latitude:   viper.GetFloat64("DEVICE_LATITUDE"),
			Longitude:  viper.GetFloat64("DEVICE_LONGITUDE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	cfg.applyDefaults()

	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Bridge.Port == 0 {
		c.Bridge.Port = 8080
	}
	if c.Bridge.Env == "" {
		c.Bridge.Env = "development"
	}
	if c.Device.Permission == "" {
		c.Device.Permission = "granted"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) GetBridgeAddr() string {
	return fmt.Sprintf("%s:%d", c.Bridge.Host, c.Bridge.Port)
}

// LocationGranted reports whether the simulated device accepts location requests.
func (d *DeviceConfig) LocationGranted() bool {
	return d.Permission == "granted"
}
