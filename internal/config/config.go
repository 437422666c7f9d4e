package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gobend/internal/material"
)

// Config holds application configuration.
type Config struct {
	Units     string
	Support   string
	Material  string
	Server    ServerConfig
	Materials map[string]MaterialConfig
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr      string
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second per client
	Burst     int
}

// MaterialConfig adds or overrides a catalog entry.
type MaterialConfig struct {
	Description    string
	ElasticModulus float64 `mapstructure:"elastic_modulus"` // GPa
	YieldStrength  float64 `mapstructure:"yield_strength"`  // MPa
	Density        float64                                  // kg/m³
}

// Load reads configuration from a .env file, the optional YAML file at path
// and the environment. Env var overrides use prefix GOBEND_.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("units", "metric")
	v.SetDefault("support", "simply_supported")
	v.SetDefault("material", material.Steel.Name)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 5)
	v.SetDefault("server.burst", 10)

	if path == "" {
		path = os.Getenv("GOBEND_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gobend")
	}

	v.SetEnvPrefix("GOBEND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path must exist
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Catalog returns the built-in materials with the configured entries added
func (c Config) Catalog() (*material.Catalog, error) {
	cat := material.DefaultCatalog()
	for name, m := range c.Materials {
		if err := cat.Add(material.Properties{
			Name:           name,
			Description:    m.Description,
			ElasticModulus: m.ElasticModulus,
			YieldStrength:  m.YieldStrength,
			Density:        m.Density,
		}); err != nil {
			return nil, fmt.Errorf("config materials: %w", err)
		}
	}
	return cat, nil
}
