package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pablasso/pomo/internal/schedule"
)

func TestDisplay_IntervalHeader(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.IntervalHeader(schedule.Interval{
		Kind:     schedule.KindFocus,
		Label:    "Focus 1",
		Duration: 25 * time.Minute,
	})

	got := buf.String()
	if !strings.Contains(got, "▶ Focus 1 — 25 min") {
		t.Errorf("unexpected header: %q", got)
	}
}

func TestDisplay_CountdownRepaintsInPlace(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.Countdown(65*time.Second, 10)

	got := buf.String()
	if !strings.HasPrefix(got, "\r\033[K") {
		t.Errorf("expected carriage return and clear, got %q", got)
	}
	if !strings.Contains(got, "01:05 remaining") {
		t.Errorf("expected clock in line, got %q", got)
	}
	if !strings.Contains(got, "10%") {
		t.Errorf("expected percent in line, got %q", got)
	}
}

func TestDisplay_CountdownSkipsUnchangedLine(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.Countdown(30*time.Second, 50)
	written := buf.Len()

	d.Countdown(30*time.Second, 50)
	if buf.Len() != written {
		t.Error("expected no write for an unchanged line")
	}

	d.Countdown(29*time.Second, 52)
	if buf.Len() == written {
		t.Error("expected a write when the line changed")
	}
}

func TestDisplay_Completed(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.Countdown(time.Second, 99)
	d.Completed()

	if !strings.Contains(buf.String(), "✓ Done!") {
		t.Errorf("expected completion mark, got %q", buf.String())
	}
}

func TestDisplay_PrintAboveRestoresCountdown(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.Countdown(10*time.Second, 80)
	buf.Reset()

	d.PrintAbove("beep %s", "played")

	got := buf.String()
	if !strings.Contains(got, "beep played\n") {
		t.Errorf("expected message line, got %q", got)
	}
	if !strings.HasSuffix(got, "00:10 remaining │ 80%") {
		t.Errorf("expected countdown restored after message, got %q", got)
	}
}
