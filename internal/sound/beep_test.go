package sound

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWAV_HeaderAndSize(t *testing.T) {
	data, err := WAV(DefaultDuration, DefaultFreq, DefaultVolume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatal("expected a RIFF/WAVE header")
	}

	// 0.5s of mono 16-bit PCM at 44100 Hz plus the 44-byte header.
	wantSamples := int(sampleRate * DefaultDuration)
	if got, want := len(data), 44+wantSamples*2; got != want {
		t.Errorf("expected %d bytes, got %d", want, got)
	}

	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if int(dataSize) != wantSamples*2 {
		t.Errorf("data chunk size %d, want %d", dataSize, wantSamples*2)
	}
}

func TestWAV_StartsAtZeroAmplitude(t *testing.T) {
	data, err := WAV(0.1, 880, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := int16(binary.LittleEndian.Uint16(data[44:46]))
	if first != 0 {
		t.Errorf("sine should start at zero, got %d", first)
	}
}

func TestWAV_RejectsBadParameters(t *testing.T) {
	if _, err := WAV(0, 880, 0.5); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := WAV(0.5, 880, 1.5); err == nil {
		t.Error("expected error for volume above 1")
	}
	if _, err := WAV(0.5, 880, -0.1); err == nil {
		t.Error("expected error for negative volume")
	}
}

func TestBell_WritesBEL(t *testing.T) {
	var buf bytes.Buffer
	if err := Bell(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "\a" {
		t.Errorf("expected BEL, got %q", buf.String())
	}
}
