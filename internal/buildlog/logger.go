// Package buildlog provides structured, per-build logging for the
// meshdag pipeline using zap, with optional rotating file output via
// lumberjack.
package buildlog

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig holds rotating file output settings.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns default rotation settings for path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Logger wraps a zap.Logger scoped to one build, tagged with a
// generated build ID so log lines from concurrent builds (e.g. in
// tests) can be told apart.
type Logger struct {
	zap     *zap.Logger
	buildID string
}

// New constructs a Logger at the given level, logging to stderr and,
// if logFile is non-empty, to a rotating file.
func New(level, logFile string) (*Logger, error) {
	if logFile == "" {
		return NewWithFileConfig(level, FileConfig{}, true)
	}
	return NewWithFileConfig(level, DefaultFileConfig(logFile), true)
}

// NewWithFileConfig constructs a Logger with explicit file rotation
// settings. Set consoleOutput to false to silence stderr (tests).
func NewWithFileConfig(level string, fileCfg FileConfig, consoleOutput bool) (*Logger, error) {
	lvl := parseLevel(level)

	var cores []zapcore.Core

	if consoleOutput {
		consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), lvl))
	}

	if fileCfg.Path != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
			LocalTime:  true,
		}
		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), lvl))
	}

	return &Logger{
		zap:     zap.New(zapcore.NewTee(cores...)),
		buildID: uuid.NewString(),
	}, nil
}

// Noop returns a Logger that discards everything, for callers that
// pass no logging configuration.
func Noop() *Logger {
	return &Logger{zap: zap.NewNop(), buildID: uuid.NewString()}
}

// BuildID returns the correlation ID stamped on every line this
// Logger emits.
func (l *Logger) BuildID() string {
	return l.buildID
}

func (l *Logger) field() zap.Field {
	return zap.String("build_id", l.buildID)
}

// BuildStarted logs the start of a build with its input size.
func (l *Logger) BuildStarted(numTris, numVerts int) {
	l.zap.Info("build started", l.field(), zap.Int("input_tris", numTris), zap.Int("input_verts", numVerts))
}

// LevelStarted logs the beginning of one DAG-builder iteration.
func (l *Logger) LevelStarted(mipLevel int32, numClusters int) {
	l.zap.Info("level started", l.field(), zap.Int32("mip_level", mipLevel), zap.Int("clusters", numClusters))
}

// GroupReduced logs one group's merge/simplify/split outcome.
func (l *Logger) GroupReduced(mipLevel int32, childTris, parentTris int, err float32) {
	l.zap.Debug("group reduced", l.field(),
		zap.Int32("mip_level", mipLevel),
		zap.Int("child_tris", childTris),
		zap.Int("parent_tris", parentTris),
		zap.Float32("error", err))
}

// RootsPromoted logs termination of the DAG builder loop.
func (l *Logger) RootsPromoted(numRoots int, reason string) {
	l.zap.Info("roots promoted", l.field(), zap.Int("roots", numRoots), zap.String("reason", reason))
}

// BuildFailed logs a malformed-input abort.
func (l *Logger) BuildFailed(err error) {
	l.zap.Warn("build failed", l.field(), zap.Error(err))
}

// BuildFinished logs the final DAG shape.
func (l *Logger) BuildFinished(numClusters, numGroups int, maxMipLevel int32) {
	l.zap.Info("build finished", l.field(),
		zap.Int("clusters", numClusters),
		zap.Int("groups", numGroups),
		zap.Int32("max_mip_level", maxMipLevel))
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
