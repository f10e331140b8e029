// Package sound synthesizes the completion beep.
package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const sampleRate = 44100

// Default beep parameters, matching a short notification tone.
const (
	DefaultDuration = 0.5
	DefaultFreq     = 880.0
	DefaultVolume   = 0.5
)

// WAV generates a mono 16-bit PCM sine beep in memory.
// durationSec is the tone length in seconds, freq the pitch in Hz and
// volume the amplitude in [0, 1].
func WAV(durationSec, freq, volume float64) ([]byte, error) {
	if durationSec <= 0 {
		return nil, fmt.Errorf("beep duration must be positive, got %v", durationSec)
	}
	if volume < 0 || volume > 1 {
		return nil, fmt.Errorf("beep volume must be in [0, 1], got %v", volume)
	}

	numSamples := int(sampleRate * durationSec)
	amplitude := volume * 32767

	samples := make([]int16, numSamples)
	for i := range samples {
		t := float64(i) / sampleRate
		samples[i] = int16(amplitude * math.Sin(2*math.Pi*freq*t))
	}

	var buf bytes.Buffer
	writeWAVHeader(&buf, numSamples)
	if err := binary.Write(&buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("encode beep samples: %w", err)
	}
	return buf.Bytes(), nil
}

// writeWAVHeader emits a canonical 44-byte RIFF/WAVE header for mono
// 16-bit PCM at sampleRate.
func writeWAVHeader(buf *bytes.Buffer, numSamples int) {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)
	dataSize := numSamples * numChannels * bitsPerSample / 8
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // fmt chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
}

// Bell writes the terminal bell character. It is the playback path for
// shells without an audio sink; failures are the caller's to ignore.
func Bell(w io.Writer) error {
	_, err := w.Write([]byte{'\a'})
	return err
}
