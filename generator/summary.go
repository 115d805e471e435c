package generator

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xlab/treeprint"
)

const summaryQuery = `
SELECT
    COUNT(*),
    MIN(timestamp),
    MAX(timestamp),
    AVG(temperature),
    AVG(pressure),
    AVG(humidity),
    AVG(flow_rate)
FROM sensor_data`

// Summary aggregates every stored reading. The aggregates are nil when the
// table is empty.
type Summary struct {
	Count          int64
	FirstTimestamp *string
	LastTimestamp  *string
	AvgTemperature *float64
	AvgPressure    *float64
	AvgHumidity    *float64
	AvgFlowRate    *float64
}

// Summarize computes the row count, timestamp range and per-field means of
// the whole table.
func (g *Generator) Summarize(ctx context.Context) (*Summary, error) {
	if g.db == nil {
		return nil, ErrNotConnected
	}

	var (
		s           Summary
		first, last sql.NullString
		t, p, h, f  sql.NullFloat64
	)
	row := g.db.WithContext(ctx).Raw(summaryQuery).Row()
	if err := row.Scan(&s.Count, &first, &last, &t, &p, &h, &f); err != nil {
		return nil, errors.Wrapf(err, "summarize %s", TableName)
	}

	s.FirstTimestamp = nullString(first)
	s.LastTimestamp = nullString(last)
	s.AvgTemperature = nullFloat(t)
	s.AvgPressure = nullFloat(p)
	s.AvgHumidity = nullFloat(h)
	s.AvgFlowRate = nullFloat(f)
	return &s, nil
}

// Print renders the summary as a tree.
func (s *Summary) Print(w io.Writer) {
	tree := treeprint.New()
	tree.SetValue(TableName + " summary")
	tree.AddNode("readings: " + strconv.FormatInt(s.Count, 10))
	tree.AddNode("first:    " + stringOrNA(s.FirstTimestamp))
	tree.AddNode("last:     " + stringOrNA(s.LastTimestamp))

	avg := tree.AddBranch("averages")
	avg.AddNode("temperature: " + floatOrNA(s.AvgTemperature, 2, "°C"))
	avg.AddNode("pressure:    " + floatOrNA(s.AvgPressure, 3, "bar"))
	avg.AddNode("humidity:    " + floatOrNA(s.AvgHumidity, 1, "%"))
	avg.AddNode("flow rate:   " + floatOrNA(s.AvgFlowRate, 2, "L/min"))

	fmt.Fprint(w, tree.String())
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func stringOrNA(v *string) string {
	if v == nil {
		return "n/a"
	}
	return *v
}

func floatOrNA(v *float64, precision int, unit string) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', precision, 64) + " " + unit
}
