package retitle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rainycape/unidecode"

	"go.senan.xyz/retitle/fileutil"
	"go.senan.xyz/retitle/tags"
	"go.senan.xyz/retitle/trackname"
)

const DefaultExt = ".mp3"

type Config struct {
	// Ext selects the files to process, and is the extension given to new names
	Ext    string
	DryRun bool
	// ASCII transliterates titles before they're made safe
	ASCII bool

	Reader tags.Reader
}

type Stats struct {
	Processed int
	Renamed   int // or planned, when dry running
	Skipped   int
}

func (s Stats) Summary(dryRun bool) string {
	verb := "Renamed"
	if dryRun {
		verb = "Planned"
	}
	summary := fmt.Sprintf("Done. Processed: %d, %s: %d, Skipped: %d", s.Processed, verb, s.Renamed, s.Skipped)
	if dryRun {
		summary += " (simulation mode: no files were modified)"
	}
	return summary
}

// Run renames every file under root with the configured extension after its
// title and track tags, writing one line per file and a summary line to out.
//
// Files are handled one at a time in walk order. Collisions are checked before
// each rename, so Run expects nothing else to be changing the tree meanwhile.
// A root that doesn't exist has no files. Failing renames are reported and
// counted as skipped, they don't stop the run.
func Run(ctx context.Context, cfg Config, root string, out io.Writer) (Stats, error) {
	r := runner{cfg: cfg.withDefaults(), out: out}

	var walkErr error
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("root does not exist", "root", root)
	case err != nil:
		return r.stats, fmt.Errorf("stat root: %w", err)
	case !info.IsDir():
		slog.Debug("root is not a directory", "root", root)
	default:
		walkErr = fileutil.WalkFiles(root, func(path string, _ fs.DirEntry) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !strings.EqualFold(filepath.Ext(path), r.cfg.Ext) {
				return nil
			}
			r.process(path)
			return nil
		})
	}

	r.emit("%s", r.stats.Summary(r.cfg.DryRun))

	if walkErr != nil {
		return r.stats, fmt.Errorf("walk: %w", walkErr)
	}
	return r.stats, nil
}

func (cfg Config) withDefaults() Config {
	cfg.Ext = trackname.NormExt(cfg.Ext)
	if cfg.Ext == "" {
		cfg.Ext = DefaultExt
	}
	if cfg.Reader == nil {
		cfg.Reader = tags.Default
	}
	return cfg
}

type runner struct {
	cfg     Config
	out     io.Writer
	stats   Stats
	overlay fileutil.Overlay
}

func (r *runner) process(src string) {
	r.stats.Processed++

	_, name, ok := Derive(r.cfg, src)
	if !ok {
		r.emit("SKIP (no title): %s", src)
		r.stats.Skipped++
		return
	}

	// a file can resolve back to its own name, eg. "X (1).mp3" from an earlier run
	dest := fileutil.UniquePathFunc(filepath.Join(filepath.Dir(src), name), r.overlay.ExistsExcept(src))
	if dest == src {
		r.emit("OK (already named): %s", filepath.Base(src))
		return
	}

	if r.cfg.DryRun {
		r.emit("WOULD RENAME: %s -> %s", filepath.Base(src), filepath.Base(dest))
		r.stats.Renamed++
		r.overlay.Move(src, dest)
		return
	}

	if err := os.Rename(src, dest); err != nil {
		r.emit("ERROR renaming %s: %v", src, err)
		r.stats.Skipped++
		return
	}
	slog.Debug("renamed", "from", src, "to", dest)
	r.emit("RENAMED: %s -> %s", filepath.Base(src), filepath.Base(dest))
	r.stats.Renamed++
	r.overlay.Move(src, dest)
}

// Derive reads the tags of src and returns them, with the track taken from the
// file name if the tags don't have one, along with the base name src should
// have. It returns false if there's no title to name the file after.
func Derive(cfg Config, src string) (tags.Tags, string, bool) {
	cfg = cfg.withDefaults()

	t := tags.Read(cfg.Reader, src)
	if !t.HasTrack() {
		base := filepath.Base(src)
		if n, ok := trackname.ExtractTrack(strings.TrimSuffix(base, filepath.Ext(base))); ok {
			t.Track = n
		}
	}
	title := t.Title
	if cfg.ASCII {
		title = unidecode.Unidecode(title)
	}
	name, ok := trackname.Build(title, t.Track, cfg.Ext)
	return t, name, ok
}

func (r *runner) emit(format string, a ...any) {
	fmt.Fprintf(r.out, format+"\n", a...)
}
