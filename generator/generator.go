// Package generator synthesizes sensor readings and stores them in SQLite.
package generator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/cnosdb/sensorgen/pkg/logger"
	"github.com/cnosdb/sensorgen/pkg/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Generator writes synthetic readings to a single SQLite store. It owns at
// most one open handle and is not safe for concurrent use.
type Generator struct {
	// Stdout receives the human-readable progress and summary.
	Stdout io.Writer

	config Config
	db     *gorm.DB
	rand   *rand.Rand
	now    func() time.Time
}

// Batch describes the readings written by one call to Generate.
type Batch struct {
	Start    time.Time
	Interval time.Duration
	Count    int
}

// Timestamp returns the timestamp of the i-th reading of the batch.
func (b *Batch) Timestamp(i int) time.Time {
	return b.Start.Add(time.Duration(i) * b.Interval)
}

// New returns a generator for c. A zero seed picks a time-based one.
func New(c Config) *Generator {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Stdout: os.Stdout,
		config: c,
		rand:   rand.New(rand.NewSource(seed)),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Connect opens the store, creating it and its directory when absent.
func (g *Generator) Connect(ctx context.Context) error {
	if g.db != nil {
		return ErrAlreadyConnected
	}
	db, err := openStore(ctx, g.config.Path)
	if err != nil {
		return err
	}
	g.db = db
	logger.Logger(ctx).Debug("store opened", zap.String("path", g.config.Path))
	return nil
}

// EnsureSchema creates the sensor_data table unless it already exists.
// Existing rows are left untouched.
func (g *Generator) EnsureSchema(ctx context.Context) error {
	if g.db == nil {
		return ErrNotConnected
	}
	if err := g.db.WithContext(ctx).Exec(schema).Error; err != nil {
		return errors.Wrapf(err, "create table %s", TableName)
	}
	fmt.Fprintf(g.Stdout, "table %s is ready\n", TableName)
	return nil
}

// Generate inserts count readings spaced interval apart, starting now. All
// rows are committed in one transaction; any failure rolls the batch back.
func (g *Generator) Generate(ctx context.Context, count int, interval time.Duration) (*Batch, error) {
	if g.db == nil {
		return nil, ErrNotConnected
	}
	if count < 0 {
		return nil, ErrInvalidCount
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	fmt.Fprintf(g.Stdout, "generating %d readings...\n", count)

	b := &Batch{Start: g.now(), Interval: interval}
	begin := time.Now()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 0; i < count; i++ {
			if utils.HasCancelled(ctx) {
				return errors.Wrapf(ctx.Err(), "generate reading %d", i)
			}
			r := g.reading(b, i)
			if err := tx.Create(&r).Error; err != nil {
				return errors.Wrapf(err, "insert reading %d", i)
			}
			if every := g.config.ProgressEvery; every > 0 && (i+1)%every == 0 {
				fmt.Fprintf(g.Stdout, "%d/%d readings generated\n", i+1, count)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.Count = count

	fmt.Fprintln(g.Stdout, "all readings committed")
	logger.Logger(ctx).Info("readings committed",
		zap.Int("count", count),
		zap.Time("start", b.Start),
		zap.Duration("interval", interval),
		zap.Duration("elapsed", time.Since(begin)))
	return b, nil
}

func (g *Generator) reading(b *Batch, i int) Reading {
	c := &g.config
	return Reading{
		Timestamp:   FormatTimestamp(b.Timestamp(i)),
		Temperature: c.Temperature.Value(g.rand, i),
		Pressure:    c.Pressure.Value(g.rand, i),
		Humidity:    c.Humidity.Value(g.rand, i),
		FlowRate:    c.FlowRate.Value(g.rand, i),
	}
}

// Close releases the store. It is a no-op when the generator never
// connected, and safe to call more than once.
func (g *Generator) Close() error {
	if g.db == nil {
		return nil
	}
	db := g.db
	g.db = nil
	if err := closeStore(db); err != nil {
		return err
	}
	logger.BgLogger().Debug("store closed", zap.String("path", g.config.Path))
	fmt.Fprintln(g.Stdout, "store closed")
	return nil
}

// Run performs one full generation: connect, ensure the schema, generate the
// configured readings and print the summary. The store is closed on every
// path out of Run.
func (g *Generator) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := g.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := g.Connect(ctx); err != nil {
		return err
	}
	if err := g.EnsureSchema(ctx); err != nil {
		return err
	}
	if _, err := g.Generate(ctx, g.config.Count, time.Duration(g.config.Interval)); err != nil {
		return err
	}
	s, err := g.Summarize(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Stdout)
	s.Print(g.Stdout)
	return nil
}
