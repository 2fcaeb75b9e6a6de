package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go.senan.xyz/retitle"
	"go.senan.xyz/retitle/cmd/internal/flags"
	"go.senan.xyz/retitle/cmd/internal/logging"
	"go.senan.xyz/retitle/fileutil"
)

func init() {
	flag := flag.CommandLine
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), "Print the tags and new name retitle would use for each file.\n")
		fmt.Fprintf(flag.Output(), "\n")
		fmt.Fprintf(flag.Output(), "Usage:\n")
		fmt.Fprintf(flag.Output(), "  $ %s [<options>] <path>...\n", flag.Name())
		fmt.Fprintf(flag.Output(), "\n")
		fmt.Fprintf(flag.Output(), "Options:\n")
		flag.PrintDefaults()
	}
}

func main() {
	exit := logging.Setup()
	defer exit()

	cfg := flags.Config()
	flags.Parse()

	for _, path := range flag.Args() {
		if !fileutil.Exists(path) {
			slog.Error("reading", "path", path, "err", os.ErrNotExist)
			continue
		}

		t, name, ok := retitle.Derive(*cfg, path)

		var track any
		if t.HasTrack() {
			track = t.Track
		}
		var newName any
		if ok {
			newName = name
		}

		fmt.Printf("%s\tTitle\t%s\n", path, format(t.Title))
		fmt.Printf("%s\tTrack\t%s\n", path, format(track))
		fmt.Printf("%s\tName\t%s\n", path, format(newName))
	}
}

func format(v any) string {
	r, _ := json.Marshal(v)
	return string(r)
}
