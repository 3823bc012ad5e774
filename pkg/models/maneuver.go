package models

import "time"

// Step is a single timed control write within a maneuver. Hold is how long
// the value is left applied before the next step runs.
type Step struct {
	Control string
	Value   int
	Hold    time.Duration
}

// Maneuver is a named ordered sequence of steps approximating one
// continuous camera motion on hardware that only accepts instantaneous
// speed/position writes.
type Maneuver struct {
	Name  string
	Steps []Step
}

// ControlReading is the parsed result of a single get-control query.
type ControlReading struct {
	Name  string
	Value int
}
