package model

// Level is the severity of a mock log line. Values match what the
// log-streaming UI expects on the wire.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// LogEvent is one synthetic log line replayed over the stream.
// Instances live in the fixed catalog and are never mutated.
type LogEvent struct {
	WorkerID  string `json:"workerId"`  // logical producer, e.g. worker-1
	Level     Level  `json:"level"`     // DEBUG, INFO, WARN or ERROR
	Message   string `json:"message"`   // required
	Timestamp string `json:"timestamp"` // ISO-8601
}

// CompletionPayload is the body of the single `complete` frame that
// terminates every stream. TotalLogs equals the number of log frames
// actually written before it.
type CompletionPayload struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	TotalLogs int    `json:"totalLogs"`
}
