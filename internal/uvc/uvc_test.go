package uvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pan Speed", "pan_speed"},
		{"Tilt Speed", "tilt_speed"},
		{"Zoom, Absolute", "zoom_absolute"},
		{"Pan (Absolute)", "pan_absolute"},
		{"Brightness", "brightness"},
		{"White Balance Temperature, Auto", "white_balance_temperature_auto"},
		{"  Exposure  ", "exposure"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}
