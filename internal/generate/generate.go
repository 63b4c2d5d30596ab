// Package generate drives the pipeline: synthesize each sound, write
// the WAV intermediate, transcode to MP3, tag the result.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nyxlabs/sfxgen/internal/encode"
	"github.com/nyxlabs/sfxgen/internal/soundset"
	"github.com/nyxlabs/sfxgen/internal/synth"
	"github.com/nyxlabs/sfxgen/internal/wav"
)

// Config holds the run parameters. The output directory is explicit
// here rather than a package constant so callers (and tests) choose
// where files land.
type Config struct {
	OutputDir string
	Encoder   encode.Options
	Tag       bool // tag encoded MP3s with ID3 metadata
}

// Report describes one finished output file.
type Report struct {
	Name       string
	Path       string
	Compressed bool // false means WAV payload under an .mp3 name
}

// Run generates every sound in the set, in order. Each sound yields
// exactly one file: an MP3, or a renamed WAV when no encoder is
// installed. The first fatal error (unwritable directory, encoder that
// ran but failed) aborts the run; already-finished reports are returned
// alongside it.
func Run(cfg Config, set soundset.Set) ([]Report, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var reports []Report
	for i, sound := range set.Sounds {
		buf := synth.Synthesize(sound.Spec)

		wavPath := filepath.Join(cfg.OutputDir, encode.Filename(sound.Name, ".wav"))
		mp3Path := filepath.Join(cfg.OutputDir, encode.Filename(sound.Name, ".mp3"))

		if _, err := wav.Write(buf, wavPath); err != nil {
			return reports, fmt.Errorf("%s: write wav: %w", sound.Name, err)
		}

		outcome, err := encode.Transcode(wavPath, mp3Path, cfg.Encoder)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", sound.Name, err)
		}

		if outcome == encode.Encoded && cfg.Tag {
			meta := encode.SoundMeta{
				Title:      sound.Name,
				Album:      set.Title,
				Genre:      set.Genre,
				TrackNum:   i + 1,
				TrackTotal: len(set.Sounds),
			}
			if err := encode.Tag(mp3Path, meta); err != nil {
				return reports, fmt.Errorf("%s: %w", sound.Name, err)
			}
		}

		reports = append(reports, Report{
			Name:       sound.Name,
			Path:       mp3Path,
			Compressed: outcome == encode.Encoded,
		})
	}

	return reports, nil
}
