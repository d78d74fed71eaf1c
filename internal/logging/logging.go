// Package logging builds the zap logger used by the command surface.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"unitconvert/internal/config"
)

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(text string) (zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(text)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", text)
	}

	return level, nil
}

// New creates a logger writing to w according to cfg.
func New(w io.Writer, cfg config.Log) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)), nil
}
