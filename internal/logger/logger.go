package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls logger construction.
type Config struct {
	ServiceName string
	Development bool
}

var global *zap.Logger = zap.NewNop()

// Init builds the process logger. Development mode gets the console encoder,
// everything else structured JSON.
func Init(cfg *Config) error {
	var (
		log *zap.Logger
		err error
	)
	if cfg.Development {
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		log, err = zapCfg.Build()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	global = log.With(zap.String("service", cfg.ServiceName))
	return nil
}

// Get returns the process logger.
func Get() *zap.Logger {
	return global
}

// Sync flushes buffered log entries.
func Sync() {
	_ = global.Sync()
}
