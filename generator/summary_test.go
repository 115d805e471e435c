package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary_Print(t *testing.T) {
	first, last := "2024-03-01T12:00:00.000000", "2024-03-01T12:03:18.000000"
	temp, pressure, humidity, flow := 29.954, 1.0625, 47.49, 10.99
	s := &Summary{
		Count:          100,
		FirstTimestamp: &first,
		LastTimestamp:  &last,
		AvgTemperature: &temp,
		AvgPressure:    &pressure,
		AvgHumidity:    &humidity,
		AvgFlowRate:    &flow,
	}

	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "sensor_data summary\n"), out)
	for _, line := range []string{
		"readings: 100",
		"first:    " + first,
		"last:     " + last,
		"averages",
		"temperature: 29.95 °C",
		"pressure:    1.062 bar",
		"humidity:    47.5 %",
		"flow rate:   10.99 L/min",
	} {
		assert.Contains(t, out, line)
	}
}

func TestSummary_Print_Empty(t *testing.T) {
	var buf bytes.Buffer
	(&Summary{}).Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "readings: 0")
	assert.Contains(t, out, "first:    n/a")
	assert.Contains(t, out, "temperature: n/a")
	assert.Contains(t, out, "flow rate:   n/a")
}
