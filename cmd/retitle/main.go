package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.senan.xyz/retitle"
	"go.senan.xyz/retitle/cmd/internal/flags"
	"go.senan.xyz/retitle/cmd/internal/logging"
	"go.senan.xyz/retitle/fileutil"
)

func init() {
	flag := flag.CommandLine
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), "Rename audio files after their title and track number tags, recursively.\n")
		fmt.Fprintf(flag.Output(), "\n")
		fmt.Fprintf(flag.Output(), "Usage:\n")
		fmt.Fprintf(flag.Output(), "  $ %s [<options>]\n", flag.Name())
		fmt.Fprintf(flag.Output(), "\n")
		fmt.Fprintf(flag.Output(), "Options:\n")
		flag.PrintDefaults()
	}
}

func main() {
	exit := logging.Setup()
	defer exit()

	var (
		cfg     = flags.Config()
		root    = flag.String("path", defaultRoot(), "Root directory to process")
		logPath = flag.String("log", "", "Also write the output to this file")
	)
	flags.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *cfg, *root, *logPath); err != nil {
		slog.Error("running", "err", err)
		return
	}
}

func run(ctx context.Context, cfg retitle.Config, root, logPath string) error {
	var out io.Writer = os.Stdout
	if logPath != "" {
		logFile, err := fileutil.CreateFile(logPath)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer logFile.Close()

		out = io.MultiWriter(os.Stdout, logFile)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("find root: %w", err)
	}

	if _, err := retitle.Run(ctx, cfg, root, out); err != nil {
		return err
	}
	return nil
}

func defaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
