// Package ptz drives camera motion by sequencing timed control writes.
// The BCC950's pan and tilt are speed controls with no position
// read-back, so every motion is a scripted "set speed, hold, stop"
// sequence rather than a move to an absolute position.
package ptz

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mvalancy-mt/logitech-bcc950/internal/config"
	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
	"github.com/mvalancy-mt/logitech-bcc950/pkg/models"
)

// Absolute zoom range of the BCC950.
const (
	ZoomMin = 100
	ZoomMax = 500
)

// holdShort separates a speed write from its matching stop write.
const holdShort = 100 * time.Millisecond

// ErrDeviceNotFound means the configured device node does not exist.
var ErrDeviceNotFound = errors.New("camera device does not exist")

// Sequencer executes maneuvers against one device. It is single-threaded;
// a running maneuver always runs to completion.
type Sequencer struct {
	ch    v4l2.Channel
	cfg   config.Config
	sleep func(time.Duration)
	stat  func(path string) error
	log   *zap.Logger
}

// NewSequencer builds a sequencer for the device named in cfg.
func NewSequencer(ch v4l2.Channel, cfg config.Config, log *zap.Logger) *Sequencer {
	return &Sequencer{
		ch:    ch,
		cfg:   cfg,
		sleep: time.Sleep,
		stat: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
		log: log,
	}
}

func (s *Sequencer) checkDevice() error {
	if err := s.stat(s.cfg.Device); err != nil {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, s.cfg.Device)
	}
	return nil
}

// Run executes the maneuver's steps in order. A failed write is logged
// and the remaining steps still run; partial motion is never rolled back.
func (s *Sequencer) Run(m models.Maneuver) error {
	if err := s.checkDevice(); err != nil {
		return err
	}
	for _, step := range m.Steps {
		if !s.ch.SetControl(s.cfg.Device, step.Control, step.Value) {
			s.log.Warn("maneuver step failed",
				zap.String("maneuver", m.Name),
				zap.String("control", step.Control),
				zap.Int("value", step.Value))
		}
		if step.Hold > 0 {
			s.sleep(step.Hold)
		}
	}
	return nil
}

// ZoomIn steps the zoom in by the configured step, clamped to the
// camera's absolute zoom range.
func (s *Sequencer) ZoomIn() error { return s.zoomBy(s.cfg.ZoomStep) }

// ZoomOut steps the zoom out by the configured step, clamped likewise.
func (s *Sequencer) ZoomOut() error { return s.zoomBy(-s.cfg.ZoomStep) }

func (s *Sequencer) zoomBy(delta int) error {
	if err := s.checkDevice(); err != nil {
		return err
	}
	current, err := s.ch.GetControl(s.cfg.Device, v4l2.CtrlZoomAbsolute)
	if err != nil {
		return fmt.Errorf("reading current zoom: %w", err)
	}
	target := clampZoom(current + delta)
	if !s.ch.SetControl(s.cfg.Device, v4l2.CtrlZoomAbsolute, target) {
		return fmt.Errorf("setting zoom to %d failed", target)
	}
	return nil
}

func clampZoom(v int) int {
	if v < ZoomMin {
		return ZoomMin
	}
	if v > ZoomMax {
		return ZoomMax
	}
	return v
}
