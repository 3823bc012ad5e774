package camera

import (
	"strings"

	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
)

// Probe reports which of the three PTZ controls a device exposes.
type Probe struct {
	Pan  bool
	Tilt bool
	Zoom bool
}

// OK reports whether all three controls are present.
func (p Probe) OK() bool { return p.Pan && p.Tilt && p.Zoom }

// Test lists a device's controls and checks for the three PTZ channels.
// The raw control listing is returned so callers can display it.
func Test(ch v4l2.Channel, device string) (Probe, string, error) {
	controls, err := ch.ListControls(device)
	if err != nil {
		return Probe{}, "", err
	}
	return Probe{
		Pan:  strings.Contains(controls, v4l2.CtrlPanSpeed),
		Tilt: strings.Contains(controls, v4l2.CtrlTiltSpeed),
		Zoom: strings.Contains(controls, v4l2.CtrlZoomAbsolute),
	}, controls, nil
}
