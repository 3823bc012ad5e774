// Package camera locates the BCC950 on the local system and validates
// that a device actually exposes the PTZ controls.
package camera

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mvalancy-mt/logitech-bcc950/internal/config"
	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
)

// ProductMarker is the product name fragment looked for in the device
// listing.
const ProductMarker = "BCC950"

// markerPathRe captures the first device node following the marker line.
var markerPathRe = regexp.MustCompile(ProductMarker + `(?s:.*?)(/dev/video\d+)`)

// devNumRe extracts the trailing number of a /dev/videoN path.
var devNumRe = regexp.MustCompile(`video(\d+)$`)

// Locator discovers which video device is the camera. Discovery order:
// product marker in the device listing first, then a capability probe of
// every video device for a pan_speed control.
type Locator struct {
	ch   v4l2.Channel
	glob func(pattern string) ([]string, error)
	save func(config.Config) error
	log  *zap.Logger
}

// NewLocator builds a locator that persists a successful discovery
// through save.
func NewLocator(ch v4l2.Channel, save func(config.Config) error, log *zap.Logger) *Locator {
	return &Locator{ch: ch, glob: filepath.Glob, save: save, log: log}
}

// Find returns the config with Device updated to the discovered path and
// whether a camera was found. When nothing matches, the configured path
// is kept and nothing is persisted.
func (l *Locator) Find(cfg config.Config) (config.Config, bool) {
	listing, err := l.ch.ListDevices()
	if err != nil {
		l.log.Warn("device listing failed", zap.Error(err))
	} else if m := markerPathRe.FindStringSubmatch(listing); m != nil {
		cfg.Device = m[1]
		l.log.Info("found camera by product name", zap.String("device", cfg.Device))
		l.persist(cfg)
		return cfg, true
	}

	// Not in the listing by name; probe every video device for PTZ
	// support. First match in device-number order wins.
	paths, err := l.glob("/dev/video*")
	if err != nil {
		l.log.Warn("device scan failed", zap.Error(err))
		return cfg, false
	}
	sort.Slice(paths, func(i, j int) bool {
		return deviceNumber(paths[i]) < deviceNumber(paths[j])
	})

	for _, dev := range paths {
		controls, err := l.ch.ListControls(dev)
		if err != nil {
			l.log.Debug("control probe failed", zap.String("device", dev), zap.Error(err))
			continue
		}
		if strings.Contains(controls, v4l2.CtrlPanSpeed) {
			cfg.Device = dev
			l.log.Info("found PTZ-capable camera", zap.String("device", cfg.Device))
			l.persist(cfg)
			return cfg, true
		}
	}

	l.log.Warn("no compatible camera found", zap.String("device", cfg.Device))
	return cfg, false
}

func (l *Locator) persist(cfg config.Config) {
	if err := l.save(cfg); err != nil {
		l.log.Error("saving discovered device failed", zap.Error(err))
	}
}

func deviceNumber(path string) int {
	m := devNumRe.FindStringSubmatch(path)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
