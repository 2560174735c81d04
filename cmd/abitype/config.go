package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config is loaded from the environment; flags override it.
type config struct {
	// ENV: ABITYPE_LOG_LEVEL
	LogLevel string `env:"ABITYPE_LOG_LEVEL,default=warn"`
	// "encoder" or "decoder". ENV: ABITYPE_DIRECTION
	Direction string `env:"ABITYPE_DIRECTION,default=encoder"`
	// Print WIT mapping and layout. ENV: ABITYPE_WIT
	WIT bool `env:"ABITYPE_WIT,default=false"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.Direction == "" {
		cfg.Direction = "encoder"
	}
	if cfg.Direction != "encoder" && cfg.Direction != "decoder" {
		return cfg, fmt.Errorf("ABITYPE_DIRECTION must be encoder or decoder, got %q", cfg.Direction)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("abitype"), nil
}
