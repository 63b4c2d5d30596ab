// Package soundset defines which sounds get generated. The built-in set
// covers the three feedback cues the app ships with; a YAML manifest can
// replace it without touching code.
package soundset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nyxlabs/sfxgen/internal/synth"
)

// Sound pairs an output name with the spec that renders it.
type Sound struct {
	Name string
	Spec synth.Spec
}

// Set is an ordered list of sounds plus the metadata tagged onto the
// encoded files.
type Set struct {
	Title  string
	Genre  string
	Sounds []Sound
}

// Default returns the built-in feedback cues.
func Default() Set {
	correct := synth.Tone(0.35, 523, 659, 784) // ascending C5 E5 G5
	correct.FadeOut = 0.1

	incorrect := synth.Tone(0.30, 392, 330) // descending G4 E4
	incorrect.FadeOut = 0.1

	click := synth.Spec{ // short A5 beep
		Frequencies: []float64{880},
		Duration:    0.08,
		FadeIn:      0.005,
		FadeOut:     0.03,
	}

	return Set{
		Title: "UI Feedback Sounds",
		Genre: "Sound Clip",
		Sounds: []Sound{
			{Name: "correct", Spec: correct},
			{Name: "incorrect", Spec: incorrect},
			{Name: "click", Spec: click},
		},
	}
}

// yamlSound mirrors one manifest entry. Fades are pointers so an
// omitted field gets the default instead of zero.
type yamlSound struct {
	Name        string    `yaml:"name"`
	Frequencies []float64 `yaml:"frequencies"`
	Duration    float64   `yaml:"duration"`
	FadeIn      *float64  `yaml:"fade_in"`
	FadeOut     *float64  `yaml:"fade_out"`
}

type yamlSet struct {
	Title  string      `yaml:"title"`
	Genre  string      `yaml:"genre"`
	Sounds []yamlSound `yaml:"sounds"`
}

// Load reads a sound set manifest from a YAML file.
// Entries are validated here so the synthesizer can assume well-formed
// specs downstream.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read manifest: %w", err)
	}

	var ys yamlSet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Set{}, fmt.Errorf("parse manifest: %w", err)
	}
	if len(ys.Sounds) == 0 {
		return Set{}, fmt.Errorf("manifest %s defines no sounds", path)
	}

	set := Set{Title: ys.Title, Genre: ys.Genre}
	seen := make(map[string]bool)

	for i, s := range ys.Sounds {
		spec := synth.Spec{
			Frequencies: s.Frequencies,
			Duration:    s.Duration,
			FadeIn:      0.01,
			FadeOut:     0.05,
		}
		if s.FadeIn != nil {
			spec.FadeIn = *s.FadeIn
		}
		if s.FadeOut != nil {
			spec.FadeOut = *s.FadeOut
		}

		if err := validate(s.Name, spec); err != nil {
			return Set{}, fmt.Errorf("manifest sound %d: %w", i+1, err)
		}
		if seen[s.Name] {
			return Set{}, fmt.Errorf("manifest sound %d: duplicate name %q", i+1, s.Name)
		}
		seen[s.Name] = true

		set.Sounds = append(set.Sounds, Sound{Name: s.Name, Spec: spec})
	}

	return set, nil
}

func validate(name string, spec synth.Spec) error {
	if name == "" {
		return fmt.Errorf("missing name")
	}
	if len(spec.Frequencies) == 0 {
		return fmt.Errorf("%s: no frequencies", name)
	}
	for _, f := range spec.Frequencies {
		if f <= 0 {
			return fmt.Errorf("%s: frequency must be positive, got %g", name, f)
		}
	}
	if spec.Duration <= 0 {
		return fmt.Errorf("%s: duration must be positive, got %g", name, spec.Duration)
	}
	if spec.FadeIn < 0 || spec.FadeOut < 0 {
		return fmt.Errorf("%s: fades must be non-negative", name)
	}
	if spec.FadeIn+spec.FadeOut > spec.Duration {
		return fmt.Errorf("%s: fades (%gs + %gs) exceed duration %gs",
			name, spec.FadeIn, spec.FadeOut, spec.Duration)
	}
	return nil
}
