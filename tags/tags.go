// tags reads the title and track number from audio files
package tags

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"go.senan.xyz/retitle/trackname"
)

var ErrUnsupported = errors.New("filetype unsupported")

// Tags is the subset of a file's metadata used for naming. An empty Title or a
// Track of trackname.NoTrack means the field was absent.
type Tags struct {
	Title string
	Track int
}

func (t Tags) HasTrack() bool { return t.Track >= 0 }

type Reader interface {
	CanRead(path string) bool
	Read(path string) (Tags, error)
}

// Default is the reader used by the command line tools.
var Default Reader = Native{}

// Read never fails. Files that can't be read, or have broken tags, come back
// with absent fields.
func Read(r Reader, path string) Tags {
	if !r.CanRead(path) {
		slog.Debug("can't read tags", "path", path, "err", ErrUnsupported)
		return empty()
	}
	t, err := r.Read(path)
	if err != nil {
		slog.Debug("can't read tags", "path", path, "err", err)
		return empty()
	}
	return t
}

// Native reads tags with pure Go parsers, picked by file extension.
type Native struct{}

var nativeReaders = map[string]Reader{
	".mp3":  ID3{},
	".flac": FLAC{},
}

func (Native) CanRead(path string) bool {
	_, ok := nativeReaders[ext(path)]
	return ok
}

func (Native) Read(path string) (Tags, error) {
	r, ok := nativeReaders[ext(path)]
	if !ok {
		return empty(), fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
	}
	return r.Read(path)
}

func empty() Tags {
	return Tags{Track: trackname.NoTrack}
}

func newTags(title, rawTrack string) Tags {
	t := Tags{Title: strings.TrimSpace(title), Track: trackname.NoTrack}
	if n, ok := trackname.ParseTrack(rawTrack); ok {
		t.Track = n
	}
	return t
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func first(vs []string) string {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
