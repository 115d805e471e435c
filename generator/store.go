package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cnosdb/sensorgen/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// openStore creates the parent directory of path and opens the SQLite file,
// creating it when absent. gorm pings the file on open, so an unwritable
// location fails here rather than on the first insert.
func openStore(ctx context.Context, path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "create store directory %s", dir)
		}
	}

	lg := logger.Logger(ctx)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 newGormLogger(lg),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "store handle")
	}
	// One writer, one connection.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func closeStore(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "store handle")
	}
	return errors.Wrap(sqlDB.Close(), "close store")
}

// gormWriter forwards gorm's printf-style log lines to zap.
type gormWriter struct {
	l     *zap.Logger
	level zapcore.Level
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	if ce := w.l.Check(w.level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

// newGormLogger traces every statement when lg is at debug level, and only
// reports slow statements and errors otherwise.
func newGormLogger(lg *zap.Logger) gormlogger.Interface {
	w := gormWriter{l: lg.Named("gorm"), level: zapcore.WarnLevel}
	level := gormlogger.Warn
	if lg.Core().Enabled(zapcore.DebugLevel) {
		w.level = zapcore.DebugLevel
		level = gormlogger.Info
	}
	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
