package trackname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTrack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stem   string
		want   int
		wantOK bool
	}{
		{"fables01_00_lafontaine_jl_64kb", 0, true},
		{"track-07-intro", 7, true},
		{"nothing_here", 0, false},
		{"track_02_outro", 2, true},
		{"disc 03 song", 3, true},
		{"a_05.b", 5, true},
		{"song12", 12, true},
		{"12", 12, true},
		{"123", 0, false},
		{"song_123_x", 0, false},
		{"live 1999 take 04", 4, true},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ExtractTrack(tt.stem)
		assert.Equalf(t, tt.wantOK, ok, "stem %q", tt.stem)
		assert.Equalf(t, tt.want, got, "stem %q", tt.stem)
	}
}

func TestExtractTrackPrefersSeparated(t *testing.T) {
	t.Parallel()

	// "01" is a bare two digit run but "_00_" is separated on both sides
	n, ok := ExtractTrack("fables01_00_x")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	// falls back to the first lone pair of digits
	n, ok = ExtractTrack("ab12cd34")
	assert.True(t, ok)
	assert.Equal(t, 12, n)
}

func TestParseTrack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"7", 7, true},
		{"07", 7, true},
		{"07/22", 7, true},
		{"7/22", 7, true},
		{"  3", 3, true},
		{"0", 0, true},
		{"12abc", 12, true},
		{"", 0, false},
		{"abc", 0, false},
		{"/12", 0, false},
		{strings.Repeat("9", 40), 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTrack(tt.raw)
		assert.Equalf(t, tt.wantOK, ok, "raw %q", tt.raw)
		assert.Equalf(t, tt.want, got, "raw %q", tt.raw)
	}
}

func TestStripTrackPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Song Name", StripTrackPrefix("07 - Song Name", 7))
	assert.Equal(t, "Song", StripTrackPrefix("7 - Song", 7))
	assert.Equal(t, "Song Name", StripTrackPrefix("Song Name", 7))
	assert.Equal(t, "Song", StripTrackPrefix("07. Song", 7))
	assert.Equal(t, "Song", StripTrackPrefix("07: Song", 7))
	assert.Equal(t, "Song", StripTrackPrefix("07 – Song", 7))
	assert.Equal(t, "Song", StripTrackPrefix("  007-Song", 7))
	assert.Equal(t, "Song", StripTrackPrefix("0 - Song", 0))
	assert.Equal(t, "Song", StripTrackPrefix("07\u00a0- Song", 7))
	assert.Equal(t, "Song", StripTrackPrefix("\u200707 -\u00a0Song", 7))

	// number doesn't match the track
	assert.Equal(t, "08 - Song", StripTrackPrefix("08 - Song", 7))
	// no track to compare with
	assert.Equal(t, "07 - Song", StripTrackPrefix("07 - Song", NoTrack))
	// no separator
	assert.Equal(t, "07 Song", StripTrackPrefix("07 Song", 7))
	// four digits isn't a track prefix
	assert.Equal(t, "1999 - Song", StripTrackPrefix("1999 - Song", 1999))
}

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title  string
		track  int
		ext    string
		want   string
		wantOK bool
	}{
		{"Song Name", 7, ".mp3", "07 - Song Name.mp3", true},
		{"Song Name", NoTrack, ".mp3", "Song Name.mp3", true},
		{"", 7, ".mp3", "", false},
		{"   ", 3, ".mp3", "", false},
		{"07 - Song Name", 7, ".mp3", "07 - Song Name.mp3", true},
		{"07\u00a0- Song Name", 7, ".mp3", "07 - Song Name.mp3", true},
		{"07 - ", 7, ".mp3", "", false},
		{"AC/DC: Live?", 1, ".mp3", "01 - AC-DC- Live-.mp3", true},
		{"Intro", 0, ".mp3", "00 - Intro.mp3", true},
		{"Intro", 123, ".mp3", "123 - Intro.mp3", true},
		{"Intro", 1, "flac", "01 - Intro.flac", true},
		{"Intro", 1, ".MP3", "01 - Intro.mp3", true},
		{"Ends with dots...", 2, ".mp3", "02 - Ends with dots.mp3", true},
	}
	for _, tt := range tests {
		got, ok := Build(tt.title, tt.track, tt.ext)
		assert.Equalf(t, tt.wantOK, ok, "title %q track %d", tt.title, tt.track)
		assert.Equalf(t, tt.want, got, "title %q track %d", tt.title, tt.track)
	}
}

func TestNormExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".mp3", NormExt("mp3"))
	assert.Equal(t, ".mp3", NormExt(".MP3"))
	assert.Equal(t, ".flac", NormExt(" .flac "))
	assert.Equal(t, "", NormExt(""))
}
