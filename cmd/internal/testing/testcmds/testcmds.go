// testcmds are small commands for script tests. Each returns the process exit
// code and reports problems on stderr.
package testcmds

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.senan.xyz/retitle/tags/tagstest"
)

// Tag writes a tagged file, picking the format by extension.
//
//	tag <path> [<key> <value>... [, <key> <value>...]...]
//
// Keys are "title" and "track". Values of more than one word are joined with spaces.
func Tag() int {
	if len(os.Args) < 2 {
		return fail("usage: tag <path> [<key> <value>...]")
	}
	path := os.Args[1]

	values, err := tagValues(os.Args[2:])
	if err != nil {
		return fail("%v", err)
	}

	write := map[string]func(path, title, track string) error{
		".mp3":  tagstest.WriteMP3,
		".flac": tagstest.WriteFLAC,
	}[strings.ToLower(filepath.Ext(path))]
	if write == nil {
		return fail("can't tag %q", path)
	}
	if err := write(path, values["title"], values["track"]); err != nil {
		return fail("write %s: %v", path, err)
	}
	return 0
}

// tagValues parses `key value..., key value...`.
func tagValues(args []string) (map[string]string, error) {
	values := map[string]string{}
	var key string
	for _, arg := range args {
		switch {
		case arg == ",":
			key = ""
		case key == "":
			if arg != "title" && arg != "track" {
				return nil, fmt.Errorf("unknown tag %q", arg)
			}
			key = arg
		default:
			values[key] = strings.TrimPrefix(values[key]+" "+arg, " ")
		}
	}
	return values, nil
}

// Find prints every path under each argument, slash separated, in lexical order.
func Find() int {
	for _, root := range os.Args[1:] {
		err := filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			fmt.Println(filepath.ToSlash(path))
			return nil
		})
		if err != nil {
			return fail("%v", err)
		}
	}
	return 0
}

// Touch creates empty files, and their parent dirs.
func Touch() int {
	for _, path := range os.Args[1:] {
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return fail("%v", err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fail("%v", err)
		}
	}
	return 0
}

func fail(format string, a ...any) int {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	return 1
}
