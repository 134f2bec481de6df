package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.00 H/s"},
		{in: 999, want: "999.00 H/s"},
		{in: 1_000, want: "1.00 kH/s"},
		{in: 12_345, want: "12.35 kH/s"},
		{in: 2_500_000, want: "2.50 MH/s"},
		{in: 3_200_000_000, want: "3.20 GH/s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rate(tt.in))
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0s"},
		{in: 42 * time.Second, want: "42s"},
		{in: 90 * time.Second, want: "1m 30s"},
		{in: 3*time.Hour + 4*time.Minute + 5*time.Second, want: "3h 4m 5s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.in))
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "16m 40s", Seconds(1000))
	assert.Equal(t, "0s", Seconds(-5))
	// A full 15-digit space at 1 MH/s overflows time.Duration but not this.
	assert.Equal(t, "320255973h 30m 6s", Seconds(float64(uint64(1)<<60)/1e6))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "65,536", Count(65536))
	assert.Equal(t, "0", Count(0))
}
