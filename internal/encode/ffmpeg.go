package encode

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Options configures the external ffmpeg encoder
type Options struct {
	Quality int    // -qscale:a (0-9, lower is better, default 5)
	Binary  string // encoder executable, default "ffmpeg"
	Verbose bool   // show ffmpeg output
}

// DefaultOptions returns sensible defaults for transcoding
func DefaultOptions() Options {
	return Options{
		Quality: 5, // VBR ~130 kbps, plenty for short UI cues
		Binary:  "ffmpeg",
	}
}

// Outcome reports how a transcode concluded.
type Outcome int

const (
	// Encoded means ffmpeg produced the MP3 and the WAV was removed.
	Encoded Outcome = iota
	// Fallback means ffmpeg was not installed; the WAV payload was
	// renamed to the MP3 path unchanged.
	Fallback
)

// EncoderError reports an ffmpeg run that started but exited nonzero.
// Distinct from tool-not-found, which triggers the WAV fallback instead.
type EncoderError struct {
	ExitCode int
	Stderr   string
}

func (e *EncoderError) Error() string {
	return fmt.Sprintf("ffmpeg exited with status %d: %s", e.ExitCode, e.Stderr)
}

// Transcode converts a WAV file to MP3 using ffmpeg.
// This is boundary code - calls an external ffmpeg process.
//
// On success the WAV intermediate is deleted. If ffmpeg is not
// installed, the WAV is renamed to mp3Path instead (payload stays PCM)
// and Fallback is returned. Any other encoder failure is fatal and
// surfaces as *EncoderError.
func Transcode(wavPath, mp3Path string, opts Options) (Outcome, error) {
	if _, err := os.Stat(wavPath); err != nil {
		return 0, fmt.Errorf("input file: %w", err)
	}

	bin := opts.Binary
	if bin == "" {
		bin = "ffmpeg"
	}

	args := []string{
		"-y", // overwrite output
		"-i", wavPath,
		"-codec:a", "libmp3lame",
		"-qscale:a", strconv.Itoa(opts.Quality),
		mp3Path,
	}

	cmd := exec.Command(bin, args...)

	// Capture output; ffmpeg logs everything to stderr.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if opts.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		// Clean up the intermediate; the MP3 is the deliverable now.
		os.Remove(wavPath)
		return Encoded, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		// No encoder on this system. Keep the PCM payload but give it
		// the name the consuming app expects.
		if err := os.Rename(wavPath, mp3Path); err != nil {
			return 0, fmt.Errorf("fallback rename: %w", err)
		}
		return Fallback, nil
	}

	// ffmpeg ran and failed. Clean up partial output and report.
	os.Remove(mp3Path)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return 0, &EncoderError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr.String(),
		}
	}
	return 0, fmt.Errorf("ffmpeg: %w", err)
}

// FFmpegAvailable checks if ffmpeg is installed and accessible
func FFmpegAvailable() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}
