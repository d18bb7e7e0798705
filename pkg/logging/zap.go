package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig controls the zap backend used by the binaries.
type ZapConfig struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool   // console encoder with colors instead of JSON
}

// NewZapLogger builds a Logger backed by a zap SugaredLogger. The MCP stub
// servers log to stderr only: stdout carries the MCP stdio transport and
// must stay clean.
func NewZapLogger(config ZapConfig) (Logger, func(), error) {
	level := zapcore.InfoLevel
	if config.Level != "" {
		if err := level.Set(config.Level); err != nil {
			return nil, nil, err
		}
	}

	var encoder zapcore.Encoder
	if config.Development {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), level)
	zapLogger := zap.New(core)
	sugar := zapLogger.Sugar()

	logger := NewLogger("", LogFuncs{
		Debugf: sugar.Debugf,
		Infof:  sugar.Infof,
		Warnf:  sugar.Warnf,
		Errorf: sugar.Errorf,
	})

	sync := func() {
		_ = zapLogger.Sync()
	}

	return logger, sync, nil
}
