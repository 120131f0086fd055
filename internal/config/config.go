// Package config provides Viper-based configuration loading for the engine server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds top-level server settings.
type ServerConfig struct {
	// Mode is "standalone", where the server also runs the completion sweep,
	// or "backend", where it only serves requests and completions happen on
	// poll or in another instance's sweep.
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Driver is "memory" (process-local, for development) or "postgres".
	Driver string `mapstructure:"driver"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameServerConfig holds the engine gRPC listener settings.
type GameServerConfig struct {
	GRPCHost string `mapstructure:"grpc_host"`
	GRPCPort int    `mapstructure:"grpc_port"`
}

// Addr returns the "host:port" gRPC address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (g GameServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.GRPCHost, g.GRPCPort)
}

// PushConfig holds the websocket push listener settings.
type PushConfig struct {
	// Host is the bind address for the HTTP listener serving the websocket endpoint.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the HTTP listener. 0 disables push.
	Port int `mapstructure:"port"`
	// Path is the HTTP path of the websocket endpoint.
	Path string `mapstructure:"path"`
	// WriteTimeout bounds each websocket frame write.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the "host:port" push listen address.
func (p PushConfig) Addr() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// Enabled reports whether the push listener should be started.
func (p PushConfig) Enabled() bool {
	return p.Port > 0
}

// EngineConfig holds action, progression and regeneration tuning.
type EngineConfig struct {
	// ContentDir is the root of the actions/, skills/ and items/ YAML directories.
	ContentDir string `mapstructure:"content_dir"`
	// SweepInterval is how often due actions are completed server-side.
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	// SweepBatch caps the number of due actions fetched per sweep.
	SweepBatch int `mapstructure:"sweep_batch"`
	// SweepParallelism caps concurrent per-player polls within one sweep.
	SweepParallelism int `mapstructure:"sweep_parallelism"`
	// MaxCatchUp caps how many elapsed attempts a single poll resolves.
	MaxCatchUp int `mapstructure:"max_catch_up"`
	// MaxLevel is the level cap of the default progression curve.
	MaxLevel int `mapstructure:"max_level"`
	// CurveScript optionally names a Lua file defining xp_for_level(level).
	CurveScript string `mapstructure:"curve_script"`
	// RegenTolerance is the drop, in pool points, below the projection that forces a resync.
	RegenTolerance float64 `mapstructure:"regen_tolerance"`
	// HPRegenPercent is the percentage of MaxHP regenerated per minute.
	HPRegenPercent float64 `mapstructure:"hp_regen_percent"`
	// SPRegenPercent is the percentage of MaxSP regenerated per minute.
	SPRegenPercent float64 `mapstructure:"sp_regen_percent"`
}

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	GameServer GameServerConfig `mapstructure:"gameserver"`
	Push       PushConfig       `mapstructure:"push"`
	Engine     EngineConfig     `mapstructure:"engine"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateServer(c.Server); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateStorage(c.Storage); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Storage.Driver == "postgres" {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGameServer(c.GameServer); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePush(c.Push); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEngine(c.Engine); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateServer(s ServerConfig) error {
	validModes := map[string]bool{"standalone": true, "backend": true}
	if !validModes[s.Mode] {
		return fmt.Errorf("server.mode must be one of [standalone, backend], got %q", s.Mode)
	}
	return nil
}

func validateStorage(s StorageConfig) error {
	validDrivers := map[string]bool{"memory": true, "postgres": true}
	if !validDrivers[s.Driver] {
		return fmt.Errorf("storage.driver must be one of [memory, postgres], got %q", s.Driver)
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGameServer(g GameServerConfig) error {
	var errs []string
	if g.GRPCHost == "" {
		errs = append(errs, "gameserver.grpc_host must not be empty")
	}
	if g.GRPCPort < 1 || g.GRPCPort > 65535 {
		errs = append(errs, fmt.Sprintf("gameserver.grpc_port must be 1-65535, got %d", g.GRPCPort))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePush(p PushConfig) error {
	if !p.Enabled() {
		return nil
	}
	var errs []string
	if p.Port > 65535 {
		errs = append(errs, fmt.Sprintf("push.port must be 0-65535, got %d", p.Port))
	}
	if !strings.HasPrefix(p.Path, "/") {
		errs = append(errs, fmt.Sprintf("push.path must start with '/', got %q", p.Path))
	}
	if p.WriteTimeout < 0 {
		errs = append(errs, "push.write_timeout must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEngine(e EngineConfig) error {
	var errs []string
	if e.ContentDir == "" {
		errs = append(errs, "engine.content_dir must not be empty")
	}
	if e.SweepInterval <= 0 {
		errs = append(errs, "engine.sweep_interval must be > 0")
	}
	if e.SweepBatch < 1 {
		errs = append(errs, fmt.Sprintf("engine.sweep_batch must be >= 1, got %d", e.SweepBatch))
	}
	if e.SweepParallelism < 1 {
		errs = append(errs, fmt.Sprintf("engine.sweep_parallelism must be >= 1, got %d", e.SweepParallelism))
	}
	if e.MaxCatchUp < 1 {
		errs = append(errs, fmt.Sprintf("engine.max_catch_up must be >= 1, got %d", e.MaxCatchUp))
	}
	if e.MaxLevel < 2 {
		errs = append(errs, fmt.Sprintf("engine.max_level must be >= 2, got %d", e.MaxLevel))
	}
	if e.RegenTolerance < 0 {
		errs = append(errs, "engine.regen_tolerance must not be negative")
	}
	if e.HPRegenPercent < 0 || e.SPRegenPercent < 0 {
		errs = append(errs, "engine regen percentages must not be negative")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with GRINDSTONE_ prefix
	v.SetEnvPrefix("GRINDSTONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance populated only with default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", "standalone")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "grindstone")
	v.SetDefault("database.password", "grindstone")
	v.SetDefault("database.name", "grindstone")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("storage.driver", "memory")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("gameserver.grpc_host", "127.0.0.1")
	v.SetDefault("gameserver.grpc_port", 50061)

	v.SetDefault("push.host", "0.0.0.0")
	v.SetDefault("push.port", 8081)
	v.SetDefault("push.path", "/ws")
	v.SetDefault("push.write_timeout", "10s")

	v.SetDefault("engine.content_dir", "content")
	v.SetDefault("engine.sweep_interval", "1s")
	v.SetDefault("engine.sweep_batch", 500)
	v.SetDefault("engine.sweep_parallelism", 8)
	v.SetDefault("engine.max_catch_up", 500)
	v.SetDefault("engine.max_level", 99)
	v.SetDefault("engine.curve_script", "")
	v.SetDefault("engine.regen_tolerance", 0.5)
	v.SetDefault("engine.hp_regen_percent", 5.0)
	v.SetDefault("engine.sp_regen_percent", 10.0)
}
