package tags

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// FLAC reads vorbis comments from FLAC files.
type FLAC struct{}

func (FLAC) CanRead(path string) bool {
	return ext(path) == ".flac"
}

func (FLAC) Read(path string) (Tags, error) {
	file, err := os.Open(path)
	if err != nil {
		return empty(), fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	// metadata blocks only, the audio frames are never needed
	f, err := flac.ParseMetadata(bufio.NewReader(file))
	if err != nil {
		return empty(), fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return empty(), fmt.Errorf("parse vorbis comment: %w", err)
		}
		title, _ := cmts.Get(flacvorbis.FIELD_TITLE)
		track, _ := cmts.Get(flacvorbis.FIELD_TRACKNUMBER)
		return newTags(first(title), first(track)), nil
	}
	return empty(), nil
}
