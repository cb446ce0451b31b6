package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"github.com/hajimehoshi/go-mp3"
)

// mp3BytesPerSample is the size of one decoded go-mp3 sample
// (16-bit little endian, two channels).
const mp3BytesPerSample = 4

// Tagger reads and writes the ID3 metadata of MP3 files.
//
// Tagger combines three libraries:
//   - dhowden/tag reads artist, title and the embedded cover
//   - hajimehoshi/go-mp3 measures the audio duration
//   - bogem/id3v2 replaces the attached picture frame
//
// Tagger holds no state and is safe for concurrent use on different files.
//
// Example:
//
//	tagger := NewTagger()
//	cover, err := tagger.ReadCoverArt("/music/Artist - Song.mp3")
//	if cover == nil && err == nil {
//	    // no embedded art
//	}
//	err = tagger.WriteCoverArt("/music/Artist - Song.mp3", jpegBytes)
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// ReadCoverArt returns the bytes of the first embedded picture.
//
// Returns (nil, nil) when the file has no tags or no picture. Any other
// error means the tag container itself could not be parsed.
func (t *Tagger) ReadCoverArt(path string) ([]byte, error) {
	meta, err := readMetadata(path)
	if err != nil || meta == nil {
		return nil, err
	}
	pic := meta.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, nil
	}
	return pic.Data, nil
}

// ReadArtist returns the lead artist tag (TPE1), or "" when unset.
func (t *Tagger) ReadArtist(path string) (string, error) {
	meta, err := readMetadata(path)
	if err != nil || meta == nil {
		return "", err
	}
	return meta.Artist(), nil
}

// ReadTitle returns the title tag (TIT2), or "" when unset.
func (t *Tagger) ReadTitle(path string) (string, error) {
	meta, err := readMetadata(path)
	if err != nil || meta == nil {
		return "", err
	}
	return meta.Title(), nil
}

// ReadDuration returns the track length in seconds.
//
// ok is false when the file cannot be opened or is not decodable MP3 audio.
func (t *Tagger) ReadDuration(path string) (seconds float64, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	d, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, false
	}
	length := d.Length()
	if length <= 0 || d.SampleRate() <= 0 {
		return 0, false
	}
	samples := length / mp3BytesPerSample
	return float64(samples) / float64(d.SampleRate()), true
}

// WriteCoverArt replaces every attached picture with one JPEG front cover.
//
// The tag is saved through a temporary file that is renamed over the
// original, so a failure leaves the file unchanged.
func (t *Tagger) WriteCoverArt(path string, artwork []byte) error {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tags: %w", err)
	}
	defer id3.Close()

	updateArtwork(id3, artwork)

	if err := id3.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

// updateArtwork embeds cover art as an attached picture frame.
func updateArtwork(id3 *id3v2.Tag, artwork []byte) {
	// Remove any existing cover pictures
	id3.DeleteFrames(id3.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	id3.AddAttachedPicture(pic)
}

func readMetadata(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tags: %w", err)
	}
	return meta, nil
}
