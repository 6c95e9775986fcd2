package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

type Config struct {
	Server ServerConfig `koanf:"server" validate:"required"`
	Log    LogConfig    `koanf:"log" validate:"required"`
}

type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port string `koanf:"port" validate:"required,numeric"`
	// Name is echoed back in the server field of every JSON body.
	Name              string `koanf:"name" validate:"required"`
	ReadHeaderTimeout int    `koanf:"read_header_timeout" validate:"required,gt=0"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
	// File enables rotating file output when non-empty; console output stays on.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"required,gt=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"gte=0"`
}

// Default returns the built-in configuration: localhost:9000, console
// logging at info.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "localhost",
			Port:              "9000",
			Name:              "mockstream",
			ReadHeaderTimeout: 10,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// LoadConfig loads the configuration from MOCKSTREAM_* environment
// variables layered over Default using koanf.
func LoadConfig() (mainConfig *Config, err error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")
	// MOCKSTREAM_SERVER__PORT=9001 maps to server.port.
	err = k.Load(env.Provider("MOCKSTREAM_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MOCKSTREAM_")), "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load initial env variables")
	}

	mainConfig = Default()
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal mainconfig")
	}

	validate := validator.New()
	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not validate the struct")
	}

	return
}

// Addr returns the host:port bind address.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
