package sensorflow

import "github.com/zoobzio/capitan"

// Bridge lifecycle signals.
var (
	// BridgeStarted is emitted when a Bridge begins ticking.
	BridgeStarted = capitan.NewSignal(
		"sensorflow.bridge.started",
		"Bridge sampling started",
	)

	// BridgeStopped is emitted when a Bridge stops ticking.
	BridgeStopped = capitan.NewSignal(
		"sensorflow.bridge.stopped",
		"Bridge sampling stopped",
	)

	// BridgePoisoned is emitted when a Bridge finds its shared state poisoned.
	BridgePoisoned = capitan.NewSignal(
		"sensorflow.bridge.poisoned",
		"Shared state poisoned, bridge terminated",
	)
)

// Edge signals.
var (
	// EdgeDetected is emitted for every event an edge detector lets through.
	EdgeDetected = capitan.NewSignal(
		"sensorflow.edge.detected",
		"Edge detected",
	)
)

// TapPanicked is emitted when a Tap side effect panics.
var TapPanicked = capitan.NewSignal(
	"sensorflow.tap.panicked",
	"Tap side effect panicked",
)

// Updater signals, emitted by the background writer task.
var (
	// UpdaterStarted is emitted when the writer task starts sampling.
	UpdaterStarted = capitan.NewSignal(
		"sensorflow.updater.started",
		"Updater sampling started",
	)

	// UpdaterStopped is emitted when the writer task returns.
	UpdaterStopped = capitan.NewSignal(
		"sensorflow.updater.stopped",
		"Updater sampling stopped",
	)

	// ReadingClassified is emitted for every raw reading with the buttons it matched.
	ReadingClassified = capitan.NewSignal(
		"sensorflow.updater.reading.classified",
		"Raw reading classified",
	)

	// UpdaterReadFailed is emitted when a raw read fails and the tick is skipped.
	UpdaterReadFailed = capitan.NewSignal(
		"sensorflow.updater.read.failed",
		"Raw read failed",
	)
)

// Field keys for sensorflow events.
var (
	// KeyProcessor is the name of the stage emitting the event.
	KeyProcessor = capitan.NewStringKey("processor")

	// KeyInterval is the configured sampling interval.
	KeyInterval = capitan.NewDurationKey("interval")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyRaw is the raw scalar reading.
	KeyRaw = capitan.NewIntKey("raw")

	// KeyButtons lists the buttons a raw reading classified as pressed.
	KeyButtons = capitan.NewStringKey("buttons")
)
