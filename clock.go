package sensorflow

import "github.com/zoobzio/clockz"

// Clock provides time operations so tick-driven stages can be tested
// deterministically with clockz.NewFakeClock.
type Clock = clockz.Clock

// Ticker delivers ticks at intervals.
type Ticker = clockz.Ticker

// RealClock is the default Clock using standard time.
var RealClock Clock = clockz.RealClock
