package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
)

// WorldProfile holds the global tunables that bias every generation decision.
// All values are read-only once the engine is constructed.
type WorldProfile struct {
	SpawnMultiplier float64 `mapstructure:"spawnMultiplier"`
	ResourceDensity float64 `mapstructure:"resourceDensity"` // 0..100, 50 is neutral
	TemperatureBias float64 `mapstructure:"temperatureBias"`
	MoistureBias    float64 `mapstructure:"moistureBias"`
	SunIntensity    float64 `mapstructure:"sunIntensity"` // 0..100
}

// Config captures the tunable parameters needed to bootstrap the engine.
type Config struct {
	Seed       int64        `mapstructure:"seed"`
	Season     string       `mapstructure:"season"`
	DataDir    string       `mapstructure:"dataDir"`
	Radius     int          `mapstructure:"radius"`
	WallChance float64      `mapstructure:"wallChance"`
	Profile    WorldProfile `mapstructure:"profile"`
}

// Default returns the configuration the engine runs with when no file or
// environment overrides are present.
func Default() *Config {
	return &Config{
		Seed:       1337,
		Season:     string(registry.SeasonSummer),
		DataDir:    "",
		Radius:     3,
		WallChance: 0.3,
		Profile: WorldProfile{
			SpawnMultiplier: 1.0,
			ResourceDensity: 50,
			TemperatureBias: 0,
			MoistureBias:    0,
			SunIntensity:    70,
		},
	}
}

// Load reads configuration from a YAML file if provided, then applies
// DREAMLAND_* environment overrides. An empty path uses defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DREAMLAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("seed", def.Seed)
	v.SetDefault("season", def.Season)
	v.SetDefault("dataDir", def.DataDir)
	v.SetDefault("radius", def.Radius)
	v.SetDefault("wallChance", def.WallChance)
	v.SetDefault("profile.spawnMultiplier", def.Profile.SpawnMultiplier)
	v.SetDefault("profile.resourceDensity", def.Profile.ResourceDensity)
	v.SetDefault("profile.temperatureBias", def.Profile.TemperatureBias)
	v.SetDefault("profile.moistureBias", def.Profile.MoistureBias)
	v.SetDefault("profile.sunIntensity", def.Profile.SunIntensity)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch registry.Season(c.Season) {
	case registry.SeasonSpring, registry.SeasonSummer, registry.SeasonAutumn, registry.SeasonWinter:
	default:
		return fmt.Errorf("season %q is not one of spring/summer/autumn/winter", c.Season)
	}
	if c.Radius < 0 {
		return errors.New("radius cannot be negative")
	}
	if c.WallChance < 0 || c.WallChance > 1 {
		return errors.New("wallChance must be within [0, 1]")
	}
	if c.Profile.SpawnMultiplier < 0 {
		return errors.New("profile.spawnMultiplier cannot be negative")
	}
	if c.Profile.ResourceDensity < 0 || c.Profile.ResourceDensity > 100 {
		return errors.New("profile.resourceDensity must be within [0, 100]")
	}
	if c.Profile.SunIntensity < 0 || c.Profile.SunIntensity > 100 {
		return errors.New("profile.sunIntensity must be within [0, 100]")
	}
	return nil
}
