package v4l2

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mvalancy-mt/logitech-bcc950/pkg/models"
)

// ParseError reports utility output that did not match the expected shape.
type ParseError struct {
	Output string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized v4l2-ctl output: %q", e.Output)
}

// readingRe matches one "name: value" or "name=value" reply line.
var readingRe = regexp.MustCompile(`^\s*([a-zA-Z0-9_]+)\s*[:=]\s*(-?\d+)\s*$`)

// ParseReading extracts the control name and integer value from a
// get-control reply.
func ParseReading(out string) (models.ControlReading, error) {
	for _, line := range strings.Split(out, "\n") {
		m := readingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		return models.ControlReading{Name: m[1], Value: value}, nil
	}
	return models.ControlReading{}, &ParseError{Output: out}
}

// ParseDevices splits device listing text into named device groups. The
// listing format is a non-indented name line followed by indented device
// node paths:
//
//	Logitech BCC950 ConferenceCam (usb-0000:00:14.0-2):
//		/dev/video0
//		/dev/video1
func ParseDevices(listing string) []models.Device {
	var devices []models.Device
	for _, raw := range strings.Split(listing, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		indented := strings.HasPrefix(raw, "\t") || strings.HasPrefix(raw, " ")
		line := strings.TrimSpace(raw)
		if !indented {
			devices = append(devices, models.Device{Name: strings.TrimSuffix(line, ":")})
			continue
		}
		if len(devices) == 0 || !strings.HasPrefix(line, "/dev/") {
			continue
		}
		last := &devices[len(devices)-1]
		last.Paths = append(last.Paths, line)
	}
	return devices
}
