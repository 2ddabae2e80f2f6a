package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger tagged with the originating service
// name and host, matching the structured log shape the rest of the system
// emits.
func New(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncoderConfig.MessageKey = "message"

	lg, err := cfg.Build()
	if err != nil {
		lg = zap.NewNop()
	}
	return lg.With(
		zap.String("service", service),
		zap.String("hostname", hostname()),
	)
}

func hostname() string { h, _ := os.Hostname(); return h }
