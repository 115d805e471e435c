package log

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultTimeLayout = "2006/01/02 15:04:05.000"

var globalLogger atomic.Value

func init() {
	l, _, _ := InitLogger(&Config{Level: "info", Format: "text"})
	ReplaceGlobals(l)
}

// InitLogger builds a zap logger from cfg. Output always goes to stderr, and
// additionally to a lumberjack-rotated file when cfg.File.Filename is set.
func InitLogger(cfg *Config, opts ...zap.Option) (*zap.Logger, *ZapProperties, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	stderr := zapcore.Lock(os.Stderr)
	sinks := []zapcore.WriteSyncer{stderr}
	if cfg.File.Filename != "" {
		sinks = append(sinks, zapcore.AddSync(newRotatingFile(&cfg.File)))
	}
	output := zapcore.NewMultiWriteSyncer(sinks...)

	encoder, err := newEncoder(cfg, isatty.IsTerminal(os.Stderr.Fd()))
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(encoder, output, level)
	lg := zap.New(core, cfg.buildOptions(stderr)...).WithOptions(opts...)
	return lg, &ZapProperties{Core: core, Syncer: output, Level: level}, nil
}

func newRotatingFile(cfg *FileConfig) *lumberjack.Logger {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = defaultLogMaxSize
	}
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    maxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
}

func newEncoder(cfg *Config, colored bool) (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(defaultTimeLayout)
	ec.EncodeDuration = zapcore.StringDurationEncoder
	if cfg.DisableTimestamp {
		ec.TimeKey = ""
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return zapcore.NewJSONEncoder(ec), nil
	case "", "text":
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	case "console":
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		if colored {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(ec), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}
}

// ReplaceGlobals swaps the process-wide logger.
func ReplaceGlobals(logger *zap.Logger) {
	globalLogger.Store(logger)
}

// L returns the global logger.
func L() *zap.Logger {
	return globalLogger.Load().(*zap.Logger)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return L().Sync()
}
