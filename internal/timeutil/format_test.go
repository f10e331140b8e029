package timeutil

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{25 * time.Minute, "25:00"},
		{90 * time.Minute, "90:00"},
		{61*time.Minute + 5*time.Second, "61:05"},
		{1500 * time.Millisecond, "00:01"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		if got := Clock(tt.in); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMinutes(t *testing.T) {
	if got := Minutes(25 * time.Minute); got != "25 min" {
		t.Errorf("Minutes(25m) = %q", got)
	}
	if got := Minutes(90 * time.Second); got != "1 min" {
		t.Errorf("Minutes(90s) = %q", got)
	}
}
