package ptz

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mvalancy-mt/logitech-bcc950/internal/config"
	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
)

type write struct {
	control string
	value   int
}

// fakeChannel records every control write and serves scripted reads.
type fakeChannel struct {
	writes   []write
	zoom     int
	zoomErr  error
	failSets bool
}

func (f *fakeChannel) ListDevices() (string, error)               { return "", nil }
func (f *fakeChannel) ListControls(device string) (string, error) { return "", nil }
func (f *fakeChannel) DumpInfo(device string) (string, error)     { return "", nil }

func (f *fakeChannel) GetControl(device, name string) (int, error) {
	if f.zoomErr != nil {
		return 0, f.zoomErr
	}
	return f.zoom, nil
}

func (f *fakeChannel) SetControl(device, name string, value int) bool {
	f.writes = append(f.writes, write{control: name, value: value})
	return !f.failSets
}

func newTestSequencer(ch v4l2.Channel, cfg config.Config) (*Sequencer, *[]time.Duration) {
	var sleeps []time.Duration
	s := NewSequencer(ch, cfg, zap.NewNop())
	s.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	s.stat = func(string) error { return nil }
	return s, &sleeps
}

func testConfig() config.Config {
	return config.Config{Device: "/dev/video0", PanSpeed: 1, TiltSpeed: 1, ZoomStep: 10}
}

func TestPanLeftIssuesSpeedThenStop(t *testing.T) {
	ch := &fakeChannel{}
	cfg := testConfig()
	cfg.PanSpeed = 3
	s, sleeps := newTestSequencer(ch, cfg)

	require.NoError(t, s.PanLeft())
	assert.Equal(t, []write{
		{v4l2.CtrlPanSpeed, -3},
		{v4l2.CtrlPanSpeed, 0},
	}, ch.writes)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, *sleeps,
		"one hold between the speed write and the stop")
}

func TestPulseDirections(t *testing.T) {
	cases := []struct {
		name    string
		run     func(*Sequencer) error
		control string
		value   int
	}{
		{"pan right", (*Sequencer).PanRight, v4l2.CtrlPanSpeed, 2},
		{"tilt up", (*Sequencer).TiltUp, v4l2.CtrlTiltSpeed, 4},
		{"tilt down", (*Sequencer).TiltDown, v4l2.CtrlTiltSpeed, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := &fakeChannel{}
			cfg := testConfig()
			cfg.PanSpeed = 2
			cfg.TiltSpeed = 4
			s, _ := newTestSequencer(ch, cfg)

			require.NoError(t, tc.run(s))
			assert.Equal(t, []write{
				{tc.control, tc.value},
				{tc.control, 0},
			}, ch.writes)
		})
	}
}

func TestResetWriteSequence(t *testing.T) {
	ch := &fakeChannel{}
	s, _ := newTestSequencer(ch, testConfig())

	require.NoError(t, s.Reset())
	assert.Equal(t, []write{
		{v4l2.CtrlPanSpeed, 1},
		{v4l2.CtrlPanSpeed, 0},
		{v4l2.CtrlPanSpeed, -1},
		{v4l2.CtrlPanSpeed, 0},
		{v4l2.CtrlTiltSpeed, 1},
		{v4l2.CtrlTiltSpeed, 0},
		{v4l2.CtrlTiltSpeed, -1},
		{v4l2.CtrlTiltSpeed, 0},
		{v4l2.CtrlZoomAbsolute, ZoomMin},
	}, ch.writes)
}

func TestZoomInStepsUp(t *testing.T) {
	ch := &fakeChannel{zoom: 200}
	s, _ := newTestSequencer(ch, testConfig())

	require.NoError(t, s.ZoomIn())
	assert.Equal(t, []write{{v4l2.CtrlZoomAbsolute, 210}}, ch.writes)
}

func TestZoomInClampsAtMax(t *testing.T) {
	ch := &fakeChannel{zoom: 490}
	cfg := testConfig()
	cfg.ZoomStep = 15
	s, _ := newTestSequencer(ch, cfg)

	require.NoError(t, s.ZoomIn())
	assert.Equal(t, []write{{v4l2.CtrlZoomAbsolute, ZoomMax}}, ch.writes)
}

func TestZoomOutClampsAtMin(t *testing.T) {
	ch := &fakeChannel{zoom: 105}
	s, _ := newTestSequencer(ch, testConfig())

	require.NoError(t, s.ZoomOut())
	assert.Equal(t, []write{{v4l2.CtrlZoomAbsolute, ZoomMin}}, ch.writes)
}

func TestZoomReadFailurePropagates(t *testing.T) {
	ch := &fakeChannel{zoomErr: errors.New("unrecognized output")}
	s, _ := newTestSequencer(ch, testConfig())

	err := s.ZoomIn()
	assert.Error(t, err)
	assert.Empty(t, ch.writes, "no write after a failed read")
}

func TestRunContinuesPastFailedWrites(t *testing.T) {
	ch := &fakeChannel{failSets: true}
	s, _ := newTestSequencer(ch, testConfig())

	require.NoError(t, s.Reset())
	assert.Len(t, ch.writes, 9, "every step still attempted")
}

func TestMissingDeviceAbortsBeforeAnyWrite(t *testing.T) {
	ch := &fakeChannel{}
	s, _ := newTestSequencer(ch, testConfig())
	s.stat = func(string) error { return errors.New("no such file") }

	err := s.PanLeft()
	require.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Empty(t, ch.writes)

	err = s.ZoomIn()
	require.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Empty(t, ch.writes)
}

func TestDemoChoreography(t *testing.T) {
	ch := &fakeChannel{}
	s, sleeps := newTestSequencer(ch, testConfig())

	require.NoError(t, s.Demo())
	require.NotEmpty(t, ch.writes)
	require.NotEmpty(t, *sleeps)

	assert.Equal(t, demoCountdown, (*sleeps)[0], "countdown before the first write")
	assert.Equal(t, write{v4l2.CtrlZoomAbsolute, ZoomMin}, ch.writes[0],
		"demo starts from minimum zoom")
	assert.Equal(t, write{v4l2.CtrlZoomAbsolute, ZoomMin}, ch.writes[len(ch.writes)-1],
		"reset leaves zoom at minimum")

	var maxZoom int
	var panValues []int
	for _, w := range ch.writes {
		switch w.control {
		case v4l2.CtrlZoomAbsolute:
			if w.value > maxZoom {
				maxZoom = w.value
			}
		case v4l2.CtrlPanSpeed:
			panValues = append(panValues, w.value)
		}
	}
	assert.Equal(t, ZoomMax, maxZoom, "full sweep reaches the top of the range")
	assert.Equal(t, 0, panValues[len(panValues)-1], "pan ends stopped")
}
