package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Galaxy    GalaxyConfig
}

type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
}

type FrontendConfig struct {
	URL       string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	CORSDebug bool   `env:"CORS_DEBUG" envDefault:"false"`
}

type LoggingConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"debug"`
	JSONFormat bool   `env:"LOG_JSON" envDefault:"false"`
}

type RateLimitConfig struct {
	Enabled           bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RequestsPerSecond float64 `env:"RATE_LIMIT_REQUESTS_PER_SECOND" envDefault:"10"`
	BurstSize         int     `env:"RATE_LIMIT_BURST_SIZE" envDefault:"20"`
	TrustProxy        bool    `env:"RATE_LIMIT_TRUST_PROXY" envDefault:"false"`
}

// GalaxyConfig carries the generation parameters. The galaxy is centered at
// origin; sector grid coordinates run from -size/sectorSize/2 to +size/sectorSize/2
// on each axis. Type is informational only and not consumed by generation.
type GalaxyConfig struct {
	Type         string  `env:"GALAXY_TYPE" envDefault:"spiral"`
	SizeXLy      float64 `env:"GALAXY_SIZE_X_LY" envDefault:"100"`
	SizeYLy      float64 `env:"GALAXY_SIZE_Y_LY" envDefault:"20"`
	SizeZLy      float64 `env:"GALAXY_SIZE_Z_LY" envDefault:"100"`
	SectorSizeLy float64 `env:"SECTOR_SIZE_LY" envDefault:"10"`
	MaxSystems   int     `env:"MAX_SYSTEMS_PER_SECTOR" envDefault:"10"`
	MaxStars     int     `env:"MAX_STARS_PER_SYSTEM" envDefault:"3"`
	MaxPlanets   int     `env:"MAX_PLANETS_PER_STAR" envDefault:"10"`
	// StrictSeeds enables duplicate-seed detection during generation. The
	// additive seed scheme is not collision resistant; strict mode turns a
	// silent overwrite into a conflict error.
	StrictSeeds bool `env:"STRICT_SEED_CHECK" envDefault:"false"`
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	return c.Galaxy.Validate()
}

// Validate rejects generation parameters that would produce a degenerate
// universe (zero-size grids, empty collections, division by zero in the
// sector iteration).
func (c GalaxyConfig) Validate() error {
	if c.SectorSizeLy <= 0 {
		return fmt.Errorf("sector size must be positive, got %g", c.SectorSizeLy)
	}

	if c.SizeXLy <= 0 || c.SizeYLy <= 0 || c.SizeZLy <= 0 {
		return fmt.Errorf("galaxy size must be positive on all axes, got (%g, %g, %g)", c.SizeXLy, c.SizeYLy, c.SizeZLy)
	}

	if c.MaxSystems <= 0 {
		return fmt.Errorf("max systems per sector must be positive, got %d", c.MaxSystems)
	}

	if c.MaxStars <= 0 {
		return fmt.Errorf("max stars per system must be positive, got %d", c.MaxStars)
	}

	if c.MaxPlanets <= 0 {
		return fmt.Errorf("max planets per star must be positive, got %d", c.MaxPlanets)
	}

	return nil
}
