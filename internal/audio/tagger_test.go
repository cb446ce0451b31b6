package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeAudio(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	payload := make([]byte, 512)
	for i := range payload {
		payload[i] = byte(i)
	}
	require.NoError(t, os.WriteFile(path, payload, 0644))
	return path
}

func TestTagger_WriteThenReadCoverArt(t *testing.T) {
	path := writeFakeAudio(t, "Artist - Song.mp3")
	tagger := NewTagger()
	cover := []byte("\xff\xd8\xff\xe0 fake jpeg payload")

	require.NoError(t, tagger.WriteCoverArt(path, cover))

	got, err := tagger.ReadCoverArt(path)
	require.NoError(t, err)
	assert.Equal(t, cover, got)
}

func TestTagger_WriteReplacesExistingCover(t *testing.T) {
	path := writeFakeAudio(t, "Artist - Song.mp3")
	tagger := NewTagger()

	require.NoError(t, tagger.WriteCoverArt(path, []byte("first cover")))
	require.NoError(t, tagger.WriteCoverArt(path, []byte("second cover")))

	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer id3.Close()

	frames := id3.GetFrames(id3.CommonID("Attached picture"))
	require.Len(t, frames, 1)
	pic, ok := frames[0].(id3v2.PictureFrame)
	require.True(t, ok)
	assert.Equal(t, []byte("second cover"), pic.Picture)
	assert.Equal(t, "image/jpeg", pic.MimeType)
	assert.Equal(t, byte(id3v2.PTFrontCover), pic.PictureType)
}

func TestTagger_ReadTextTagsWithoutCover(t *testing.T) {
	path := writeFakeAudio(t, "Artist - Song.mp3")

	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	id3.SetArtist("Tagged Artist")
	id3.SetTitle("Tagged Title")
	require.NoError(t, id3.Save())
	require.NoError(t, id3.Close())

	tagger := NewTagger()

	cover, err := tagger.ReadCoverArt(path)
	require.NoError(t, err)
	assert.Nil(t, cover)

	artist, err := tagger.ReadArtist(path)
	require.NoError(t, err)
	assert.Equal(t, "Tagged Artist", artist)

	title, err := tagger.ReadTitle(path)
	require.NoError(t, err)
	assert.Equal(t, "Tagged Title", title)
}

func TestTagger_NoTagsMeansNoCover(t *testing.T) {
	path := writeFakeAudio(t, "Artist - Song.mp3")

	cover, err := NewTagger().ReadCoverArt(path)
	require.NoError(t, err)
	assert.Nil(t, cover)
}

func TestTagger_ReadDurationOfNonAudio(t *testing.T) {
	path := writeFakeAudio(t, "Artist - Song.mp3")

	_, ok := NewTagger().ReadDuration(path)
	assert.False(t, ok)

	_, ok = NewTagger().ReadDuration(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.False(t, ok)
}

func TestTagger_WriteMissingFile(t *testing.T) {
	err := NewTagger().WriteCoverArt(filepath.Join(t.TempDir(), "missing.mp3"), []byte("x"))
	assert.Error(t, err)
}
