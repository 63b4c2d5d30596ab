// Package wav serializes sample buffers into the uncompressed PCM
// container used as the transcoder's input.
package wav

import (
	"encoding/binary"
	"math"
	"os"
)

// Container format constants
const (
	SampleRate    = 44100 // Hz
	Channels      = 1     // Mono
	BitsPerSample = 16
	HeaderSize    = 44 // RIFF + fmt + data chunk headers
)

// Quantize converts float samples to 16-bit signed PCM via
// round(s × 32767). Values outside [-1.0, 1.0] wrap; callers are
// expected to stay within the synthesizer's ±0.7 envelope.
func Quantize(samples []float64) []int16 {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = int16(math.Round(s * 32767))
	}
	return pcm
}

// Encode creates a complete WAV file from a float sample buffer.
// This is a pure function: samples → header + little-endian PCM bytes.
func Encode(samples []float64) []byte {
	pcm := Quantize(samples)

	dataSize := uint32(2 * len(pcm))
	fileSize := 36 + dataSize // Total - 8 bytes for RIFF header

	wav := make([]byte, HeaderSize+2*len(pcm))

	// RIFF header
	copy(wav[0:4], "RIFF")
	binary.LittleEndian.PutUint32(wav[4:8], fileSize)
	copy(wav[8:12], "WAVE")

	// fmt subchunk
	copy(wav[12:16], "fmt ")
	binary.LittleEndian.PutUint32(wav[16:20], 16) // Subchunk1Size (16 for PCM)
	binary.LittleEndian.PutUint16(wav[20:22], 1)  // AudioFormat (1 = PCM)
	binary.LittleEndian.PutUint16(wav[22:24], Channels)
	binary.LittleEndian.PutUint32(wav[24:28], SampleRate)

	byteRate := SampleRate * Channels * (BitsPerSample / 8) // 88200
	binary.LittleEndian.PutUint32(wav[28:32], uint32(byteRate))

	blockAlign := Channels * (BitsPerSample / 8) // 2
	binary.LittleEndian.PutUint16(wav[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(wav[34:36], BitsPerSample)

	// data subchunk
	copy(wav[36:40], "data")
	binary.LittleEndian.PutUint32(wav[40:44], dataSize)

	for i, s := range pcm {
		binary.LittleEndian.PutUint16(wav[HeaderSize+2*i:], uint16(s))
	}

	return wav
}

// Write encodes the buffer and writes it to path, overwriting any
// existing file. Returns path for downstream chaining.
func Write(samples []float64, path string) (string, error) {
	if err := os.WriteFile(path, Encode(samples), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// IsWAV reports whether data begins with a RIFF/WAVE header. Used to
// detect fallback files that carry an .mp3 name over a PCM payload.
func IsWAV(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WAVE"
}
