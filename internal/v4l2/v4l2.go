// Package v4l2 wraps the v4l2-ctl command-line utility behind a narrow
// channel interface. Everything here is text scraping of the utility's
// output; the maneuver logic never sees it.
package v4l2

import (
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Names of the integer controls the BCC950 exposes for PTZ.
const (
	CtrlPanSpeed     = "pan_speed"
	CtrlTiltSpeed    = "tilt_speed"
	CtrlZoomAbsolute = "zoom_absolute"
)

// Channel issues synchronous get/set requests for named integer controls
// on a video device. Implementations may shell out to v4l2-ctl or talk to
// the kernel directly; callers cannot tell the difference.
type Channel interface {
	// ListDevices returns the raw device listing text.
	ListDevices() (string, error)
	// ListControls returns the raw control listing text for a device.
	ListControls(device string) (string, error)
	// GetControl reads the current integer value of a named control.
	GetControl(device, name string) (int, error)
	// SetControl writes a control value. Failure is logged and reported
	// as false, never as a fatal error.
	SetControl(device, name string, value int) bool
	// DumpInfo returns the full device/driver info text.
	DumpInfo(device string) (string, error)
}

// Runner executes the underlying control utility. Split out so tests can
// script the utility's output.
type Runner interface {
	Output(args ...string) (string, error)
	Run(args ...string) error
}

type execRunner struct {
	bin string
}

func (r execRunner) Output(args ...string) (string, error) {
	out, err := exec.Command(r.bin, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", r.bin, strings.Join(args, " "), err)
	}
	return string(out), nil
}

func (r execRunner) Run(args ...string) error {
	if err := exec.Command(r.bin, args...).Run(); err != nil {
		return fmt.Errorf("%s %s: %w", r.bin, strings.Join(args, " "), err)
	}
	return nil
}

// Ctl is a Channel backed by the v4l2-ctl binary.
type Ctl struct {
	runner Runner
	log    *zap.Logger
}

// New returns a Ctl that invokes v4l2-ctl from PATH.
func New(log *zap.Logger) *Ctl {
	return NewWithRunner(execRunner{bin: "v4l2-ctl"}, log)
}

// NewWithRunner returns a Ctl using the given runner.
func NewWithRunner(r Runner, log *zap.Logger) *Ctl {
	return &Ctl{runner: r, log: log}
}

func (c *Ctl) ListDevices() (string, error) {
	return c.runner.Output("--list-devices")
}

func (c *Ctl) ListControls(device string) (string, error) {
	return c.runner.Output("-d", device, "--list-ctrls")
}

func (c *Ctl) DumpInfo(device string) (string, error) {
	return c.runner.Output("-d", device, "--all")
}

func (c *Ctl) GetControl(device, name string) (int, error) {
	out, err := c.runner.Output("-d", device, "--get-ctrl="+name)
	if err != nil {
		return 0, err
	}
	reading, err := ParseReading(out)
	if err != nil {
		return 0, err
	}
	return reading.Value, nil
}

func (c *Ctl) SetControl(device, name string, value int) bool {
	assignment := fmt.Sprintf("%s=%d", name, value)
	if err := c.runner.Run("-d", device, "-c", assignment); err != nil {
		c.log.Error("control write failed",
			zap.String("device", device),
			zap.String("control", assignment),
			zap.Error(err))
		return false
	}
	return true
}
