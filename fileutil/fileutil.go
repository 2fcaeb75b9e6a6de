package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"go.senan.xyz/natcmp"
)

// MaxNameLen is the longest stem SafeName will return, in characters. It leaves
// room for an extension and a collision suffix under common path limits.
const MaxNameLen = 180

var safeNameReplacer = strings.NewReplacer(
	"\x00", "",
	"<", "-",
	">", "-",
	":", "-",
	`"`, "-",
	"/", "-",
	`\`, "-",
	"|", "-",
	"?", "-",
	"*", "-",
)

// SafeName turns name into a single filename component that is valid on
// common filesystems. The result may be empty.
func SafeName(name string) string {
	name = safeNameReplacer.Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	name = trimTrailing(name)
	if r := []rune(name); len(r) > MaxNameLen {
		name = trimTrailing(string(r[:MaxNameLen]))
	}
	return name
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
}

// Exists reports whether something is at path, without following symlinks.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// UniquePath returns dest if nothing is there, otherwise the first free
// "stem (n).ext" sibling. The check is not atomic with any later write.
func UniquePath(dest string) string {
	return UniquePathFunc(dest, Exists)
}

func UniquePathFunc(dest string, exists func(path string) bool) string {
	if !exists(dest) {
		return dest
	}
	dir, base := filepath.Split(dest)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

// Overlay is a view of the filesystem with the moves made (or planned) during a
// run applied on top. The zero value is ready to use.
type Overlay struct {
	claimed map[string]struct{}
	vacated map[string]struct{}
}

func (o *Overlay) Exists(path string) bool {
	path = filepath.Clean(path)
	if _, ok := o.claimed[path]; ok {
		return true
	}
	if _, ok := o.vacated[path]; ok {
		return false
	}
	return Exists(path)
}

// ExistsExcept is like Exists but treats skip as free. Used so a file can be
// resolved back onto its own name.
func (o *Overlay) ExistsExcept(skip string) func(string) bool {
	skip = filepath.Clean(skip)
	return func(path string) bool {
		if filepath.Clean(path) == skip {
			return false
		}
		return o.Exists(path)
	}
}

func (o *Overlay) Move(src, dst string) {
	if o.claimed == nil {
		o.claimed = map[string]struct{}{}
		o.vacated = map[string]struct{}{}
	}
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	delete(o.claimed, src)
	o.vacated[src] = struct{}{}
	delete(o.vacated, dst)
	o.claimed[dst] = struct{}{}
}

// WalkFiles calls fn for every non-directory entry under root. Within a
// directory entries are visited in natural order, files before subdirectories.
// An error reading root is returned, errors reading a subdirectory are logged
// and the subdirectory is skipped. Returning fs.SkipAll from fn stops the walk.
func WalkFiles(root string, fn func(path string, d fs.DirEntry) error) error {
	err := walkFiles(root, true, fn)
	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func walkFiles(dir string, isRoot bool, fn func(path string, d fs.DirEntry) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isRoot {
			return fmt.Errorf("read dir: %w", err)
		}
		slog.Warn("skipping unreadable dir", "dir", dir, "err", err)
		return nil
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return natcmp.Compare(a.Name(), b.Name())
	})

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, path)
			continue
		}
		if err := fn(path, entry); err != nil {
			return err
		}
	}
	for _, d := range dirs {
		if err := walkFiles(d, false, fn); err != nil {
			return err
		}
	}
	return nil
}

// CreateFile creates or truncates path, making any missing parent directories.
func CreateFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("make parents: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return f, nil
}
