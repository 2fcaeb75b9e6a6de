// Package trackname derives file names from a track title and number.
package trackname

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.senan.xyz/retitle/fileutil"
)

// NoTrack marks an absent track number. Any negative track is treated the same.
const NoTrack = -1

var filenameTrackExprs = []*regexp.Regexp{
	regexp.MustCompile(`[_\- ](\d{2})[_\- .]`),          // _00_ -00- or " 00 "
	regexp.MustCompile(`(?:^|[^\d])(\d{2})(?:[^\d]|$)`), // any two digit chunk
}

// ExtractTrack finds a track number encoded in a file name stem, such as the
// 00 in "fables01_00_lafontaine_jl_64kb". The last pattern accepts any lone
// pair of digits so it can misfire on things like years.
func ExtractTrack(stem string) (int, bool) {
	for _, expr := range filenameTrackExprs {
		m := expr.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	return 0, false
}

var leadingNumExpr = regexp.MustCompile(`^\s*(\d+)`)

// ParseTrack reads a track number tag value like "7", "07", or "7/22".
func ParseTrack(raw string) (int, bool) {
	m := leadingNumExpr.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// eg. "01 - ", "1 - ", "01: ", "01. ", "01 – ". spaces include non-ASCII ones
// like no-break space, which tag editors sometimes write
var titleTrackPrefixExpr = regexp.MustCompile(`^[\s\p{Zs}]*(\d{1,3})[\s\p{Zs}]*[-–.:][\s\p{Zs}]*`)

// StripTrackPrefix removes a leading track number from title when it matches
// track, so it isn't repeated once the number is prefixed again.
func StripTrackPrefix(title string, track int) string {
	if track < 0 {
		return title
	}
	m := titleTrackPrefixExpr.FindStringSubmatchIndex(title)
	if m == nil {
		return title
	}
	leading, err := strconv.Atoi(title[m[2]:m[3]])
	if err != nil || leading != track {
		return title
	}
	return title[m[1]:]
}

// Build returns the file name for title and track with extension ext, or false
// if no usable name can be made from the title.
func Build(title string, track int, ext string) (string, bool) {
	if title == "" {
		return "", false
	}
	title = fileutil.SafeName(StripTrackPrefix(title, track))
	if title == "" {
		return "", false
	}
	name := title
	if track >= 0 {
		name = fmt.Sprintf("%02d - %s", track, title)
	}
	return name + NormExt(ext), true
}

// NormExt lowercases ext and makes sure it has a leading dot.
func NormExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
