package kafka

const (
	FeedResult    = "feed_result"
	SensorReading = "sensor_reading"
)

// TelemetryEvent is one ingested telemetry row. Nullable readings stay
// nil so the sink can store NULL.
type TelemetryEvent struct {
	Timestamp int64    `json:"timestamp"`
	DeviceID  string   `json:"device_id"`
	EventType string   `json:"event_type"`
	Amount    *float64 `json:"amount"`
	Result    *string  `json:"result"`
	Level     *float64 `json:"level"`
	Weight    *float64 `json:"weight"`
}

// StructuredConnectRecord carries the schema inline for the Kafka Connect
// JSON converter.
type StructuredConnectRecord struct {
	Schema  Schema         `json:"schema"`
	Payload TelemetryEvent `json:"payload"`
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

var TelemetrySchema = Schema{
	Type:     "struct",
	Name:     "FeederTelemetry",
	Optional: false,
	Fields: []Field{
		{Field: "timestamp", Type: "int64"},
		{Field: "device_id", Type: "string"},
		{Field: "event_type", Type: "string"},
		{Field: "amount", Type: "double", Optional: true},
		{Field: "result", Type: "string", Optional: true},
		{Field: "level", Type: "double", Optional: true},
		{Field: "weight", Type: "double", Optional: true},
	},
}
