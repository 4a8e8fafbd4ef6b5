// config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FLIGHTPATH_"

// Default OpenFlights data files.
const (
	DefaultAirportsURL = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/airports.dat"
	DefaultRoutesURL   = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/routes.dat"
)

type ServerConfig struct {
	Port string `yaml:"port" validate:"required,numeric"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver" validate:"required,oneof=sqlite mysql"`
	Path     string `yaml:"path" validate:"required_if=Driver sqlite"` // sqlite file
	Host     string `yaml:"host" validate:"required_if=Driver mysql"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname" validate:"required_if=Driver mysql"`
}

type DataConfig struct {
	AirportsPath       string        `yaml:"airports_path" validate:"required"`
	RoutesPath         string        `yaml:"routes_path" validate:"required"`
	AirportsURL        string        `yaml:"airports_url" validate:"omitempty,url"`
	RoutesURL          string        `yaml:"routes_url" validate:"omitempty,url"`
	DownloadTimeoutStr string        `yaml:"download_timeout"`
	DownloadTimeout    time.Duration `yaml:"-"` // parsed DownloadTimeoutStr
}

type SearchConfig struct {
	Source    string `yaml:"source" validate:"oneof=files database"`
	Haversine string `yaml:"haversine" validate:"oneof=legacy corrected"`
	Dedup     string `yaml:"dedup" validate:"oneof=city_airline city"`
}

type Config struct {
	LogLevel string         `yaml:"log_level" validate:"oneof=debug info warn error"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Data     DataConfig     `yaml:"data"`
	Search   SearchConfig   `yaml:"search"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Driver: "sqlite", Path: "flightpath.db", Port: "3306"},
		Data: DataConfig{
			AirportsPath:       "airports.csv",
			RoutesPath:         "routes.csv",
			AirportsURL:        DefaultAirportsURL,
			RoutesURL:          DefaultRoutesURL,
			DownloadTimeoutStr: "30s",
		},
		Search: SearchConfig{Source: "files", Haversine: "legacy", Dedup: "city_airline"},
	}
}

// Load reads the YAML file at path on top of the defaults, then a .env file
// when one exists, then FLIGHTPATH_* environment overrides. An empty path
// skips the YAML step.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	applyEnv(cfg)

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finish() error {
	if c.Data.DownloadTimeoutStr != "" {
		d, err := time.ParseDuration(c.Data.DownloadTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse download_timeout: %w", err)
		}
		c.Data.DownloadTimeout = d
	} else {
		c.Data.DownloadTimeout = 30 * time.Second
	}
	return c.Validate()
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "mysql" {
		// username:password@protocol(address)/dbname?param=value
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Port, d.DBName)
	}
	return d.Path
}

var envBindings = []struct {
	key string
	set func(*Config, string)
}{
	{"LOG_LEVEL", func(c *Config, v string) { c.LogLevel = v }},
	{"SERVER_PORT", func(c *Config, v string) { c.Server.Port = v }},
	{"DB_DRIVER", func(c *Config, v string) { c.Database.Driver = v }},
	{"DB_PATH", func(c *Config, v string) { c.Database.Path = v }},
	{"DB_HOST", func(c *Config, v string) { c.Database.Host = v }},
	{"DB_PORT", func(c *Config, v string) { c.Database.Port = v }},
	{"DB_USER", func(c *Config, v string) { c.Database.User = v }},
	{"DB_PASSWORD", func(c *Config, v string) { c.Database.Password = v }},
	{"DB_NAME", func(c *Config, v string) { c.Database.DBName = v }},
	{"AIRPORTS_PATH", func(c *Config, v string) { c.Data.AirportsPath = v }},
	{"ROUTES_PATH", func(c *Config, v string) { c.Data.RoutesPath = v }},
	{"AIRPORTS_URL", func(c *Config, v string) { c.Data.AirportsURL = v }},
	{"ROUTES_URL", func(c *Config, v string) { c.Data.RoutesURL = v }},
	{"DOWNLOAD_TIMEOUT", func(c *Config, v string) { c.Data.DownloadTimeoutStr = v }},
	{"SEARCH_SOURCE", func(c *Config, v string) { c.Search.Source = v }},
	{"SEARCH_HAVERSINE", func(c *Config, v string) { c.Search.Haversine = v }},
	{"SEARCH_DEDUP", func(c *Config, v string) { c.Search.Dedup = v }},
}

func applyEnv(c *Config) {
	for _, b := range envBindings {
		if v, ok := os.LookupEnv(EnvPrefix + b.key); ok {
			b.set(c, v)
		}
	}
}

// PortNumber returns Server.Port as an int.
func (s ServerConfig) PortNumber() int {
	n, _ := strconv.Atoi(s.Port)
	return n
}
