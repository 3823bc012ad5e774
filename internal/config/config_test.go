package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".bcc950_config")
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(configPath(t))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := configPath(t)
	want := Config{Device: "/dev/video2", PanSpeed: 2, TiltSpeed: 3, ZoomStep: 15}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveWritesFixedOrder(t *testing.T) {
	path := configPath(t)
	cfg := Config{Device: "/dev/video2", PanSpeed: 2, TiltSpeed: 3, ZoomStep: 15}

	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DEVICE=/dev/video2\nPAN_SPEED=2\nTILT_SPEED=3\nZOOM_STEP=15\n", string(data))
}

func TestLoadPartialFileDefaultsRemainingFields(t *testing.T) {
	path := configPath(t)
	require.NoError(t, os.WriteFile(path, []byte("DEVICE=/dev/video5\nPAN_SPEED=4\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/video5", cfg.Device)
	assert.Equal(t, 4, cfg.PanSpeed)
	assert.Equal(t, DefaultTiltSpeed, cfg.TiltSpeed)
	assert.Equal(t, DefaultZoomStep, cfg.ZoomStep)
}

func TestLoadMalformedFieldDefaultsThatFieldOnly(t *testing.T) {
	path := configPath(t)
	require.NoError(t, os.WriteFile(path,
		[]byte("DEVICE=/dev/video1\nPAN_SPEED=fast\nTILT_SPEED=3\nZOOM_STEP=-5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/video1", cfg.Device)
	assert.Equal(t, DefaultPanSpeed, cfg.PanSpeed, "unparsable value falls back")
	assert.Equal(t, 3, cfg.TiltSpeed, "valid sibling field keeps its value")
	assert.Equal(t, DefaultZoomStep, cfg.ZoomStep, "out-of-range value falls back")
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := configPath(t)
	require.NoError(t, os.WriteFile(path,
		[]byte("DEVICE=/dev/video1\nFOCUS_MODE=auto\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/video1", cfg.Device)
	assert.Equal(t, DefaultPanSpeed, cfg.PanSpeed)
}
