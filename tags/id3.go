package tags

import (
	"fmt"
	"path/filepath"

	"github.com/bogem/id3v2/v2"
)

// ID3 reads ID3v2 tags from MP3 files. Files with no tag read as empty.
type ID3 struct{}

func (ID3) CanRead(path string) bool {
	return ext(path) == ".mp3"
}

func (ID3) Read(path string) (Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return empty(), fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer tag.Close()

	// TIT2 and TRCK
	return newTags(tag.Title(), tag.GetTextFrame(tag.CommonID("Track number/Position in set")).Text), nil
}
