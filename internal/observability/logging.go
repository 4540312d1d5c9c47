// Package observability wires structured logging for the CLI.
//
// Commands log through CLILogger so that diagnostics go to stderr and
// never pollute stdout, which carries command output (file contents, key
// listings) that callers may pipe.
package observability

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLILogger is the process-wide logger used by CLI commands.
// It defaults to a no-op logger until Init is called.
var CLILogger = zap.NewNop()

// Init builds the CLI logger at the given level.
//
// Level accepts zap's textual levels ("debug", "info", "warn", "error");
// an unrecognized value falls back to info.
func Init(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	CLILogger = zap.New(core)
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	_ = CLILogger.Sync()
}
