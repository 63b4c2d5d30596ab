package encode

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// SoundMeta contains the ID3 metadata for one generated cue.
type SoundMeta struct {
	Title      string // sound name, e.g. "correct"
	Album      string // sound set title
	Genre      string
	TrackNum   int
	TrackTotal int
}

// Tag writes ID3v2.4 tags to an encoded MP3.
// This is boundary code - performs file I/O.
//
// Only real MP3s get tagged; fallback files keep a bare WAV payload and
// must not be touched.
func Tag(path string, meta SoundMeta) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetVersion(4)

	tag.SetTitle(meta.Title)
	tag.SetAlbum(meta.Album)
	if meta.Genre != "" {
		tag.SetGenre(meta.Genre)
	}

	if meta.TrackTotal > 0 {
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8,
			fmt.Sprintf("%d/%d", meta.TrackNum, meta.TrackTotal))
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}
