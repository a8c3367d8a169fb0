package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port             int `yaml:"port" mapstructure:"port"`
	MaxBodyBytes     int `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	ReadTimeoutSecs  int `yaml:"read_timeout_secs" mapstructure:"read_timeout_secs"`
	WriteTimeoutSecs int `yaml:"write_timeout_secs" mapstructure:"write_timeout_secs"`
}

func (s ServerConfig) ReadTimeout() time.Duration  { return time.Duration(s.ReadTimeoutSecs) * time.Second }
func (s ServerConfig) WriteTimeout() time.Duration { return time.Duration(s.WriteTimeoutSecs) * time.Second }

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// StoreConfig configures evaluation history. An empty path disables it.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// EngineConfig bounds batch evaluation.
type EngineConfig struct {
	BatchConcurrency int `yaml:"batch_concurrency" mapstructure:"batch_concurrency"`
	MaxBatchSize     int `yaml:"max_batch_size" mapstructure:"max_batch_size"`
}

// Load reads .env, config.yaml and BENEFITS_* environment variables, in
// increasing order of precedence over the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BENEFITS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "BENEFITS_SERVER_PORT", "PORT"); err != nil {
		return nil, eris.Wrap(err, "config: bind port")
	}

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.read_timeout_secs", 10)
	v.SetDefault("server.write_timeout_secs", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.path", "")
	v.SetDefault("engine.batch_concurrency", 8)
	v.SetDefault("engine.max_batch_size", 100)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port < 1 || c.Server.Port > 65535:
		return eris.Errorf("config: server.port %d out of range", c.Server.Port)
	case c.Server.MaxBodyBytes < 1:
		return eris.New("config: server.max_body_bytes must be positive")
	case c.Engine.BatchConcurrency < 1:
		return eris.New("config: engine.batch_concurrency must be positive")
	case c.Engine.MaxBatchSize < 1:
		return eris.New("config: engine.max_batch_size must be positive")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
