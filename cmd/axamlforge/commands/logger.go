package commands

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log starts as a no-op so package initialization order never matters;
// InitLogger swaps in the real console logger before any command runs.
var log = zap.NewNop().Sugar()

// InitLogger configures console logging to stderr. Quiet runs surface only
// warnings so pipeline output stays clean; verbose runs trace every phase.
func InitLogger(verbose bool) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		level,
	)

	log = zap.New(core).Sugar()
}
