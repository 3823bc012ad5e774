package ptz

import (
	"time"

	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
	"github.com/mvalancy-mt/logitech-bcc950/pkg/models"
)

// demoCountdown is the delay before the demo starts moving, giving the
// operator time to step into frame.
const demoCountdown = 3 * time.Second

// Demo runs the scripted showcase choreography and recenters afterwards.
// Every step is unconditional: a glitching write is logged and the
// sequence keeps going so the demo always runs to completion.
func (s *Sequencer) Demo() error {
	if err := s.checkDevice(); err != nil {
		return err
	}
	s.sleep(demoCountdown)
	if err := s.Run(s.demoManeuver()); err != nil {
		return err
	}
	return s.Reset()
}

// demoManeuver builds the full choreography: a circular sweep with zoom
// ramps, a full zoom range sweep, and all four diagonal moves.
func (s *Sequencer) demoManeuver() models.Maneuver {
	var steps []models.Step
	add := func(control string, value int, hold time.Duration) {
		steps = append(steps, models.Step{Control: control, Value: value, Hold: hold})
	}

	// Start from minimum zoom.
	add(v4l2.CtrlZoomAbsolute, ZoomMin, time.Second)

	// Pan left while ramping the zoom in.
	add(v4l2.CtrlPanSpeed, -s.cfg.PanSpeed, 0)
	for zoom := ZoomMin; zoom <= 300; zoom += 20 {
		add(v4l2.CtrlZoomAbsolute, zoom, 300*time.Millisecond)
	}
	add(v4l2.CtrlPanSpeed, 0, time.Second)

	// Tilt up, holding the zoom.
	add(v4l2.CtrlTiltSpeed, s.cfg.TiltSpeed, 3*time.Second)
	add(v4l2.CtrlTiltSpeed, 0, time.Second)

	// Pan right while ramping the zoom back out.
	add(v4l2.CtrlPanSpeed, s.cfg.PanSpeed, 0)
	for zoom := 300; zoom >= ZoomMin; zoom -= 20 {
		add(v4l2.CtrlZoomAbsolute, zoom, 300*time.Millisecond)
	}
	add(v4l2.CtrlPanSpeed, 0, time.Second)

	// Tilt down to complete the circle.
	add(v4l2.CtrlTiltSpeed, -s.cfg.TiltSpeed, 3*time.Second)
	add(v4l2.CtrlTiltSpeed, 0, time.Second)

	// Full zoom sweep, pausing at the far end.
	for zoom := ZoomMin; zoom <= ZoomMax; zoom += 20 {
		add(v4l2.CtrlZoomAbsolute, zoom, 100*time.Millisecond)
	}
	steps[len(steps)-1].Hold = 2 * time.Second
	for zoom := ZoomMax; zoom >= ZoomMin; zoom -= 20 {
		add(v4l2.CtrlZoomAbsolute, zoom, 100*time.Millisecond)
	}

	// Diagonal holds: up-right, down-left, up-left, down-right.
	diagonals := []struct{ pan, tilt int }{
		{s.cfg.PanSpeed, s.cfg.TiltSpeed},
		{-s.cfg.PanSpeed, -s.cfg.TiltSpeed},
		{-s.cfg.PanSpeed, s.cfg.TiltSpeed},
		{s.cfg.PanSpeed, -s.cfg.TiltSpeed},
	}
	for _, d := range diagonals {
		add(v4l2.CtrlPanSpeed, d.pan, 0)
		add(v4l2.CtrlTiltSpeed, d.tilt, 2*time.Second)
		add(v4l2.CtrlPanSpeed, 0, 0)
		add(v4l2.CtrlTiltSpeed, 0, time.Second)
	}

	return models.Maneuver{Name: "demo", Steps: steps}
}
