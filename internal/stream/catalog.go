package stream

import "github.com/otto-handler/mockstream/internal/model"

// catalog is the fixed sequence of mock log events replayed by every
// stream: a scripted build, test and deploy run across three workers.
// Read-only after init, so handlers share it without synchronization.
var catalog = []model.LogEvent{
	{WorkerID: "worker-1", Level: model.LevelInfo, Message: "=== Build started ===", Timestamp: "2025-09-09T11:00:00Z"},
	{WorkerID: "worker-1", Level: model.LevelInfo, Message: "Installing project dependencies...", Timestamp: "2025-09-09T11:00:01Z"},
	{WorkerID: "worker-1", Level: model.LevelInfo, Message: "Downloading package: axios@5.2.2", Timestamp: "2025-09-09T11:00:02Z"},
	{WorkerID: "worker-2", Level: model.LevelDebug, Message: "Starting TypeScript compilation", Timestamp: "2025-09-09T11:00:03Z"},
	{WorkerID: "worker-2", Level: model.LevelInfo, Message: "Compilation finished: 125 files processed", Timestamp: "2025-09-09T11:00:05Z"},
	{WorkerID: "worker-1", Level: model.LevelInfo, Message: "=== Test run started ===", Timestamp: "2025-09-09T11:00:06Z"},
	{WorkerID: "worker-3", Level: model.LevelWarn, Message: "WARNING: deprecated package detected", Timestamp: "2025-09-09T11:00:07Z"},
	{WorkerID: "worker-2", Level: model.LevelInfo, Message: "Running Jest tests...", Timestamp: "2025-09-09T11:00:08Z"},
	{WorkerID: "worker-2", Level: model.LevelInfo, Message: "Test passed: should authenticate user", Timestamp: "2025-09-09T11:00:09Z"},
	{WorkerID: "worker-1", Level: model.LevelInfo, Message: "=== Deploy started ===", Timestamp: "2025-09-09T11:00:10Z"},
	{WorkerID: "worker-3", Level: model.LevelInfo, Message: "Building Docker image...", Timestamp: "2025-09-09T11:00:12Z"},
	{WorkerID: "worker-3", Level: model.LevelInfo, Message: "Deploy finished: deploy-1757418000", Timestamp: "2025-09-09T11:00:15Z"},
}

// Catalog returns the shared mock log catalog. Callers must treat the
// returned slice as read-only.
func Catalog() []model.LogEvent {
	return catalog
}
