// Package config loads graindb's YAML configuration via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage configures the on-disk file and buffer pool.
type Storage struct {
	File     string `mapstructure:"file"`
	PoolSize int    `mapstructure:"pool_size"`
	K        int    `mapstructure:"lruk"`
	WALDir   string `mapstructure:"wal_dir"`
}

// Log configures structured logging.
type Log struct {
	Level string `mapstructure:"level"`
}

// Config is the root configuration document.
type Config struct {
	Storage Storage `mapstructure:"storage"`
	Log     Log     `mapstructure:"log"`
}

// Default returns a Config with sane defaults, used when no file is given.
func Default() Config {
	return Config{
		Storage: Storage{
			File:     "graindb.db",
			PoolSize: 64,
			K:        2,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML config file at path, falling back to Default for
// any field the file does not set.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("storage.file", cfg.Storage.File)
	v.SetDefault("storage.pool_size", cfg.Storage.PoolSize)
	v.SetDefault("storage.lruk", cfg.Storage.K)
	v.SetDefault("log.level", cfg.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}
