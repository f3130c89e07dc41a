package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config collects everything the binary needs to wire itself. Values come
// from config.yaml in ~/.sudokuterm or the working directory, overridden
// by SUDOKUTERM_* environment variables (a .env file is honored too).
type Config struct {
	DataDir string `mapstructure:"data_dir"`
	Store   string `mapstructure:"store"` // file | redis

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Board struct {
		BoxWidth  int `mapstructure:"box_width"`
		BoxHeight int `mapstructure:"box_height"`
	} `mapstructure:"board"`

	Difficulty  string `mapstructure:"difficulty"`
	Solver      string `mapstructure:"solver"` // backtrack | dlx
	UniqueCarve bool   `mapstructure:"unique_carve"`

	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
}

// Load reads .env, config file and environment, in that order of
// precedence (lowest first). A missing config file is fine; defaults
// cover everything.
func Load() (*Config, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".sudokuterm")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	v.AddConfigPath(".")
	v.SetEnvPrefix("SUDOKUTERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("store", "file")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("board.box_width", 3)
	v.SetDefault("board.box_height", 3)
	v.SetDefault("difficulty", "MEDIUM")
	v.SetDefault("solver", "backtrack")
	v.SetDefault("unique_carve", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// NewLogger builds the application logger. The TUI owns the terminal, so
// logs go to a file under the data dir unless configured otherwise.
func NewLogger(cfg *Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	path := cfg.Log.File
	if path == "" {
		path = filepath.Join(cfg.DataDir, "sudokuterm.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	return log, f, nil
}

// NewRedisClient builds a client from the config block.
func NewRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
