package ptz

import (
	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
	"github.com/mvalancy-mt/logitech-bcc950/pkg/models"
)

// pulse briefly applies a speed value and then stops the axis.
func pulse(name, control string, value int) models.Maneuver {
	return models.Maneuver{
		Name: name,
		Steps: []models.Step{
			{Control: control, Value: value, Hold: holdShort},
			{Control: control, Value: 0},
		},
	}
}

// PanLeft nudges the camera left at the configured pan speed.
func (s *Sequencer) PanLeft() error {
	return s.Run(pulse("pan-left", v4l2.CtrlPanSpeed, -s.cfg.PanSpeed))
}

// PanRight nudges the camera right at the configured pan speed.
func (s *Sequencer) PanRight() error {
	return s.Run(pulse("pan-right", v4l2.CtrlPanSpeed, s.cfg.PanSpeed))
}

// TiltUp nudges the camera up at the configured tilt speed.
func (s *Sequencer) TiltUp() error {
	return s.Run(pulse("tilt-up", v4l2.CtrlTiltSpeed, s.cfg.TiltSpeed))
}

// TiltDown nudges the camera down at the configured tilt speed.
func (s *Sequencer) TiltDown() error {
	return s.Run(pulse("tilt-down", v4l2.CtrlTiltSpeed, -s.cfg.TiltSpeed))
}

// Reset recenters the pan and tilt axes as well as the hardware allows
// and returns zoom to its minimum. The speed controls are relative with
// no position read-back, so this only guarantees the net commanded speed
// ends at zero, not that the head is truly centered.
func (s *Sequencer) Reset() error {
	return s.Run(resetManeuver())
}

func resetManeuver() models.Maneuver {
	var steps []models.Step
	for _, control := range []string{v4l2.CtrlPanSpeed, v4l2.CtrlTiltSpeed} {
		for _, value := range []int{1, 0, -1, 0} {
			steps = append(steps, models.Step{Control: control, Value: value, Hold: holdShort})
		}
	}
	steps = append(steps, models.Step{Control: v4l2.CtrlZoomAbsolute, Value: ZoomMin})
	return models.Maneuver{Name: "reset", Steps: steps}
}
