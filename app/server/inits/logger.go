package inits

import (
	"fmt"
	"human-sourced-registry/app/server/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const loggerName = "registry"

// Logger 非生产环境输出彩色的开发日志，生产环境输出 JSON
func Logger(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProd() {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.Named(loggerName), nil
}
