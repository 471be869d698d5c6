package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Log is the process-wide logger. It is a no-op logger until Init is called,
// so packages can log safely from tests.
var Log = zap.NewNop().Sugar()

// Init builds the logger for the given environment. "production" gets the
// JSON encoder, everything else the human-readable development encoder.
func Init(env string) error {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l.Sugar()
	return nil
}

func Sync() {
	_ = Log.Sync()
}
