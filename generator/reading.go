package generator

import "time"

// TimestampLayout is the ISO-8601 layout readings are stored with. It is
// fixed width, so ordering the text column orders the readings by time.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// TableName is the single table readings are written to.
const TableName = "sensor_data"

const schema = `
CREATE TABLE IF NOT EXISTS sensor_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT NOT NULL,
    temperature REAL NOT NULL,
    pressure REAL NOT NULL,
    humidity REAL NOT NULL,
    flow_rate REAL NOT NULL,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
)`

// Reading is one synthesized row of sensor_data.
type Reading struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp   string  `gorm:"column:timestamp;not null"`
	Temperature float64 `gorm:"column:temperature;not null"`
	Pressure    float64 `gorm:"column:pressure;not null"`
	Humidity    float64 `gorm:"column:humidity;not null"`
	FlowRate    float64 `gorm:"column:flow_rate;not null"`
	// Filled in by the column default; never written by the generator.
	CreatedAt string `gorm:"column:created_at;->"`
}

// TableName customizes the table name
func (Reading) TableName() string {
	return TableName
}

// FormatTimestamp renders t the way readings store it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
