package flags

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.senan.xyz/flagconf"
	"go.senan.xyz/retitle"
	"go.senan.xyz/retitle/tags"
	"go.senan.xyz/retitle/trackname"
)

func init() {
	flag.CommandLine.Init(retitle.Name, flag.ExitOnError)
}

// Parse parses the command line, then RETITLE_* environment variables, then the
// config file. It handles -version and -config.
func Parse() {
	userConfig, _ := os.UserConfigDir()
	defaultConfigPath := filepath.Join(userConfig, retitle.Name, "config")
	configPath := flag.String("config-path", defaultConfigPath, "Path to config file")

	printVersion := flag.Bool("version", false, "Print the version and exit")
	printConfig := flag.Bool("config", false, "Print the parsed config and exit")

	flag.Parse()
	flagconf.ReadEnvPrefix = func(_ *flag.FlagSet) string { return retitle.Name }
	flagconf.ParseEnv()
	flagconf.ParseConfig(*configPath)

	if *printVersion {
		fmt.Printf("%s %s\n", flag.CommandLine.Name(), retitle.Version)
		os.Exit(0)
	}
	if *printConfig {
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("%-16s %s\n", f.Name, f.Value)
		})
		os.Exit(0)
	}
}

func Config() *retitle.Config {
	cfg := retitle.Config{Reader: tags.Default}
	flag.Func("ext", fmt.Sprintf("Extension of the files to rename (default %q)", retitle.DefaultExt), func(s string) error {
		if !cfg.Reader.CanRead("file" + trackname.NormExt(s)) {
			return fmt.Errorf("%w: %q", tags.ErrUnsupported, s)
		}
		cfg.Ext = s
		return nil
	})
	flag.BoolVar(&cfg.DryRun, "dry-run", false, "Show what would be renamed without changing any files")
	flag.BoolVar(&cfg.ASCII, "ascii", false, "Transliterate titles to ASCII before renaming")
	return &cfg
}
