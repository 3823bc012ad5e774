// Package uvc implements the control channel against the kernel's V4L2
// interface directly, without shelling out to v4l2-ctl. Listing output is
// synthesized in the same text shape the v4l2-ctl adapter produces so the
// device locator can scrape either one.
package uvc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackjack/webcam"
	"go.uber.org/zap"

	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
)

// Channel talks to video devices through V4L2 ioctls.
type Channel struct {
	log *zap.Logger
}

var _ v4l2.Channel = (*Channel)(nil)

// New returns a direct-V4L2 channel.
func New(log *zap.Logger) *Channel {
	return &Channel{log: log}
}

func (c *Channel) ListDevices() (string, error) {
	devices, err := webcam.ListDevices()
	if err != nil {
		return "", fmt.Errorf("listing video devices: %w", err)
	}

	byName := make(map[string][]string)
	for path, name := range devices {
		byName[name] = append(byName[name], path)
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		paths := byName[name]
		sort.Strings(paths)
		fmt.Fprintf(&b, "%s:\n", name)
		for _, path := range paths {
			fmt.Fprintf(&b, "\t%s\n", path)
		}
	}
	return b.String(), nil
}

func (c *Channel) ListControls(device string) (string, error) {
	cam, err := webcam.Open(device)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", device, err)
	}
	defer cam.Close()

	type row struct {
		name     string
		min, max int32
	}
	var rows []row
	for _, ctrl := range cam.GetControls() {
		rows = append(rows, row{name: NormalizeName(ctrl.Name), min: ctrl.Min, max: ctrl.Max})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s : min=%d max=%d\n", r.name, r.min, r.max)
	}
	return b.String(), nil
}

func (c *Channel) GetControl(device, name string) (int, error) {
	cam, err := webcam.Open(device)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", device, err)
	}
	defer cam.Close()

	id, ok := controlID(cam, name)
	if !ok {
		return 0, fmt.Errorf("control %q not found on %s", name, device)
	}
	value, err := cam.GetControl(id)
	if err != nil {
		return 0, fmt.Errorf("reading %s on %s: %w", name, device, err)
	}
	return int(value), nil
}

func (c *Channel) SetControl(device, name string, value int) bool {
	cam, err := webcam.Open(device)
	if err != nil {
		c.log.Error("control write failed",
			zap.String("device", device),
			zap.String("control", name),
			zap.Error(err))
		return false
	}
	defer cam.Close()

	id, ok := controlID(cam, name)
	if !ok {
		c.log.Error("control write failed",
			zap.String("device", device),
			zap.String("control", name),
			zap.String("reason", "control not found"))
		return false
	}
	if err := cam.SetControl(id, int32(value)); err != nil {
		c.log.Error("control write failed",
			zap.String("device", device),
			zap.String("control", fmt.Sprintf("%s=%d", name, value)),
			zap.Error(err))
		return false
	}
	return true
}

func (c *Channel) DumpInfo(device string) (string, error) {
	controls, err := c.ListControls(device)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Device: %s\n\nUser Controls\n\n", device)
	b.WriteString(controls)
	return b.String(), nil
}

// controlID finds the numeric control id whose normalized name matches.
func controlID(cam *webcam.Webcam, name string) (webcam.ControlID, bool) {
	for id, ctrl := range cam.GetControls() {
		if NormalizeName(ctrl.Name) == name {
			return id, true
		}
	}
	return 0, false
}

// NormalizeName converts a driver-reported control name such as
// "Pan Speed" or "Zoom, Absolute" into the snake_case form v4l2-ctl
// prints (pan_speed, zoom_absolute).
func NormalizeName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		isWord := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isWord {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
