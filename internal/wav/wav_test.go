package wav

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEncode_Header(t *testing.T) {
	// 1 second of silence (44100 samples × 2 bytes)
	samples := make([]float64, 44100)

	data := Encode(samples)

	expectedSize := HeaderSize + 2*len(samples)
	if len(data) != expectedSize {
		t.Errorf("WAV size = %d, want %d", len(data), expectedSize)
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF magic = %q, want \"RIFF\"", string(data[0:4]))
	}

	fileSize := binary.LittleEndian.Uint32(data[4:8])
	if fileSize != uint32(len(data)-8) {
		t.Errorf("File size = %d, want %d", fileSize, len(data)-8)
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE format = %q, want \"WAVE\"", string(data[8:12]))
	}

	if string(data[12:16]) != "fmt " {
		t.Errorf("fmt chunk = %q, want \"fmt \"", string(data[12:16]))
	}

	fmtSize := binary.LittleEndian.Uint32(data[16:20])
	if fmtSize != 16 {
		t.Errorf("fmt size = %d, want 16", fmtSize)
	}

	audioFormat := binary.LittleEndian.Uint16(data[20:22])
	if audioFormat != 1 {
		t.Errorf("Audio format = %d, want 1 (PCM)", audioFormat)
	}

	channels := binary.LittleEndian.Uint16(data[22:24])
	if channels != 1 {
		t.Errorf("Channels = %d, want 1 (mono)", channels)
	}

	sampleRate := binary.LittleEndian.Uint32(data[24:28])
	if sampleRate != 44100 {
		t.Errorf("Sample rate = %d, want 44100", sampleRate)
	}

	// Byte rate (44100 × 1 × 2 = 88200)
	byteRate := binary.LittleEndian.Uint32(data[28:32])
	if byteRate != 88200 {
		t.Errorf("Byte rate = %d, want 88200", byteRate)
	}

	blockAlign := binary.LittleEndian.Uint16(data[32:34])
	if blockAlign != 2 {
		t.Errorf("Block align = %d, want 2", blockAlign)
	}

	bitsPerSample := binary.LittleEndian.Uint16(data[34:36])
	if bitsPerSample != 16 {
		t.Errorf("Bits per sample = %d, want 16", bitsPerSample)
	}

	if string(data[36:40]) != "data" {
		t.Errorf("data chunk = %q, want \"data\"", string(data[36:40]))
	}

	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if dataSize != uint32(2*len(samples)) {
		t.Errorf("Data size = %d, want %d", dataSize, 2*len(samples))
	}
}

func TestQuantize_Zero(t *testing.T) {
	pcm := Quantize(make([]float64, 100))

	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

func TestQuantize_FullScale(t *testing.T) {
	pcm := Quantize([]float64{0.7, -0.7, 1.0, -1.0, 0.5})

	want := []int16{22937, -22937, 32767, -32767, 16384}
	for i, w := range want {
		if pcm[i] != w {
			t.Errorf("sample %d = %d, want %d", i, pcm[i], w)
		}
	}
}

func TestQuantize_Rounds(t *testing.T) {
	// round(), not truncation: 0.00002×32767 ≈ 0.655 → 1
	pcm := Quantize([]float64{0.00002, -0.00002})

	if pcm[0] != 1 || pcm[1] != -1 {
		t.Errorf("Quantize = %v, want [1 -1]", pcm)
	}
}

func TestEncode_LittleEndianPayload(t *testing.T) {
	data := Encode([]float64{0.7})

	got := int16(binary.LittleEndian.Uint16(data[HeaderSize:]))
	want := int16(math.Round(0.7 * 32767)) // 22937
	if got != want {
		t.Errorf("payload sample = %d, want %d", got, want)
	}
}

func TestEncode_Empty(t *testing.T) {
	data := Encode(nil)

	if len(data) != HeaderSize {
		t.Errorf("empty WAV size = %d, want %d", len(data), HeaderSize)
	}

	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if dataSize != 0 {
		t.Errorf("Data size = %d, want 0", dataSize)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	got, err := Write(make([]float64, 10), path)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got != path {
		t.Errorf("Write returned %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !IsWAV(data) {
		t.Error("written file is not a RIFF/WAVE container")
	}
	if len(data) != HeaderSize+20 {
		t.Errorf("file size = %d, want %d", len(data), HeaderSize+20)
	}
}

func TestIsWAV(t *testing.T) {
	if !IsWAV(Encode(nil)) {
		t.Error("IsWAV rejected a valid header")
	}
	if IsWAV([]byte("ID3\x04not a wav")) {
		t.Error("IsWAV accepted non-WAV data")
	}
	if IsWAV([]byte("RIFF")) {
		t.Error("IsWAV accepted a truncated header")
	}
}
