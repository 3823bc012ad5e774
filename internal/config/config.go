package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Built-in defaults, used whenever the config file or one of its fields
// is absent or unusable.
const (
	DefaultDevice    = "/dev/video0"
	DefaultPanSpeed  = 1
	DefaultTiltSpeed = 1
	DefaultZoomStep  = 10
)

// Config holds the persisted camera preferences. PanSpeed and TiltSpeed
// are always >= 1 and ZoomStep is always > 0 after a Load.
type Config struct {
	Device    string
	PanSpeed  int
	TiltSpeed int
	ZoomStep  int
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() Config {
	return Config{
		Device:    DefaultDevice,
		PanSpeed:  DefaultPanSpeed,
		TiltSpeed: DefaultTiltSpeed,
		ZoomStep:  DefaultZoomStep,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".bcc950_config"), nil
}

// Load reads the KEY=VALUE config file at path. A missing or unparsable
// file yields the defaults; a numeric field that fails to parse or
// violates its lower bound falls back to that field's default. Unknown
// keys are ignored.
func Load(path string) (Config, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if dev := strings.TrimSpace(v.GetString("device")); dev != "" {
		cfg.Device = dev
	}
	cfg.PanSpeed = intField(v, "pan_speed", DefaultPanSpeed)
	cfg.TiltSpeed = intField(v, "tilt_speed", DefaultTiltSpeed)
	cfg.ZoomStep = intField(v, "zoom_step", DefaultZoomStep)

	return cfg, nil
}

// intField reads a positive integer key, substituting def when the key is
// absent, unparsable (viper yields 0) or below 1.
func intField(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n := v.GetInt(key)
	if n < 1 {
		return def
	}
	return n
}

// Save overwrites path with the four recognized keys in a fixed order.
// The whole file is replaced; values are written bare, without quoting.
func Save(path string, cfg Config) error {
	var b strings.Builder
	fmt.Fprintf(&b, "DEVICE=%s\n", cfg.Device)
	fmt.Fprintf(&b, "PAN_SPEED=%d\n", cfg.PanSpeed)
	fmt.Fprintf(&b, "TILT_SPEED=%d\n", cfg.TiltSpeed)
	fmt.Fprintf(&b, "ZOOM_STEP=%d\n", cfg.ZoomStep)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
