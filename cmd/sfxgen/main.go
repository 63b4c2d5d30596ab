package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nyxlabs/sfxgen/internal/encode"
	"github.com/nyxlabs/sfxgen/internal/generate"
	"github.com/nyxlabs/sfxgen/internal/soundset"
)

func main() {
	// Parse flags
	output := flag.String("o", "assets/sounds", "Output directory")
	flag.StringVar(output, "output", "assets/sounds", "Output directory")

	quality := flag.Int("q", 5, "ffmpeg MP3 quality (-qscale:a, 0-9, lower is better)")
	flag.IntVar(quality, "quality", 5, "ffmpeg MP3 quality")

	manifest := flag.String("m", "", "Sound set manifest (YAML); default is the built-in set")
	flag.StringVar(manifest, "manifest", "", "Sound set manifest (YAML)")

	noTag := flag.Bool("no-tag", false, "Skip ID3 tagging of encoded MP3s")

	verbose := flag.Bool("v", false, "Verbose output")
	flag.BoolVar(verbose, "verbose", false, "Verbose output")

	flag.Parse()

	fmt.Println("sfxgen - UI feedback sound generator")
	fmt.Println(strings.Repeat("=", 50))

	// Pick the sound set
	set := soundset.Default()
	if *manifest != "" {
		var err error
		set, err = soundset.Load(*manifest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Manifest: %s (%d sounds)\n", *manifest, len(set.Sounds))
	}

	if !encode.FFmpegAvailable() {
		fmt.Println("ffmpeg not found, keeping WAV payloads under .mp3 names")
	}

	fmt.Printf("Output: %s\n\n", *output)

	opts := encode.DefaultOptions()
	opts.Quality = *quality
	opts.Verbose = *verbose

	cfg := generate.Config{
		OutputDir: *output,
		Encoder:   opts,
		Tag:       !*noTag,
	}

	reports, err := generate.Run(cfg, set)

	for _, r := range reports {
		if r.Compressed {
			fmt.Printf("Created: %s\n", r.Path)
		} else {
			fmt.Printf("Created: %s (actually WAV)\n", r.Path)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 50))
	fmt.Printf("Done! Generated %d sounds to %s\n", len(reports), *output)
}
