//go:build taglib

package tags

import (
	"fmt"

	"github.com/sentriz/audiotags"
)

// building with -tags taglib reads everything through the system TagLib
func init() {
	Default = TagLib{}
}

type TagLib struct{}

func (TagLib) CanRead(path string) bool {
	switch ext(path) {
	case ".mp3", ".flac", ".aac", ".m4a", ".m4b", ".ogg", ".opus", ".wma", ".wav", ".wv":
		return true
	}
	return false
}

func (TagLib) Read(path string) (Tags, error) {
	f, err := audiotags.Open(path)
	if err != nil {
		return empty(), fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	raw := f.ReadTags()
	return newTags(first(find(raw, "title")), first(find(raw, "tracknumber", "track"))), nil
}

func find(m map[string][]string, keys ...string) []string {
	for _, k := range keys {
		if vs := m[k]; first(vs) != "" {
			return vs
		}
	}
	return nil
}
