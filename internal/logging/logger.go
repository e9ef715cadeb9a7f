// Package logging builds the zap loggers used by the CLI and the HTTP service.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/ats-scorer/internal/types"
)

// New returns a console (or JSON) logger at info (or debug) level. Output goes
// to stderr so the CLI can keep stdout for score documents.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig(),
	}
	return cfg.Build()
}

// encoderConfig renders durations as milliseconds.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey: "msg",

		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.RFC3339TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,

		EncodeDuration: zapcore.MillisDurationEncoder,
	}
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// ScoreFields flattens the headline numbers of a score result into log fields.
func ScoreFields(result *types.ScoreResult) []zap.Field {
	if result == nil {
		return nil
	}
	fields := []zap.Field{
		zap.Int("keyword_score", result.KeywordScore),
		zap.Int("measurable_results_score", result.MeasurableResultsScore),
		zap.Int("structure_score", result.StructureScore),
		zap.Int("composite", result.Composite),
		zap.Int("missing_keywords", len(result.Details.KeywordUsage.Missing)),
	}
	if result.MaxAchievable != nil {
		fields = append(fields, zap.Int("max_achievable", *result.MaxAchievable))
	}
	return fields
}
