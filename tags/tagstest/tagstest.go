// tagstest writes small tagged audio files for tests
package tagstest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// fake audio payload, only the tag parsers look at these files. it starts with
// a frame sync code so it also passes as a FLAC stream
var frames = append([]byte{0xFF, 0xF8}, make([]byte, 126)...)

// WriteMP3 creates path with an ID3v2.4 tag. Empty values are left out, so
// WriteMP3(p, "", "") gives a file with an empty tag.
func WriteMP3(path, title, track string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("make parents: %w", err)
	}

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if title != "" {
		tag.SetTitle(title)
	}
	if track != "" {
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), tag.DefaultEncoding(), track)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	if _, err := tag.WriteTo(f); err != nil {
		return fmt.Errorf("write tag: %w", err)
	}
	if _, err := f.Write(frames); err != nil {
		return fmt.Errorf("write frames: %w", err)
	}
	return nil
}

// WriteFLAC creates path with a blank stream info block and a vorbis comment.
func WriteFLAC(path, title, track string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("make parents: %w", err)
	}

	cmts := flacvorbis.New()
	if title != "" {
		if err := cmts.Add(flacvorbis.FIELD_TITLE, title); err != nil {
			return fmt.Errorf("add title: %w", err)
		}
	}
	if track != "" {
		if err := cmts.Add(flacvorbis.FIELD_TRACKNUMBER, track); err != nil {
			return fmt.Errorf("add track: %w", err)
		}
	}
	cmtsMeta := cmts.Marshal()

	f := &flac.File{
		Meta: []*flac.MetaDataBlock{
			{Type: flac.StreamInfo, Data: make([]byte, 34)},
			&cmtsMeta,
		},
		Frames: frames,
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
