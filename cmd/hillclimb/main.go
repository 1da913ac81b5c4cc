package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/elevpath/internal/config"
)

func main() {
	os.Exit(hillclimb())
}

type flags struct {
	configFile string
	logLevel   string
	showPath   bool
	check      bool
	profiling  bool
}

// newFlagSet registers the command-line flags into f. Usage and parse errors go to out.
func newFlagSet(out io.Writer, f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("hillclimb", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&f.configFile, "config", "", "path to TOML config file (optional)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (default from config)")
	fs.BoolVar(&f.showPath, "path", false, "also print the climbing route as x,y coordinates")
	fs.BoolVar(&f.check, "check", false, "cross-check both answers against a plain BFS")
	fs.BoolVar(&f.profiling, "profile", false, "enable CPU profiling")

	fs.Usage = func() {
		fmt.Fprintln(out, "usage: hillclimb [flags] <input-file>")
		fmt.Fprint(out, fs.FlagUsages())
		fmt.Fprintln(out, "\nNote: flags override config file values.")
	}

	return fs
}

// hillclimb returns the process exit code so deferred profile output is flushed.
func hillclimb() int {
	var f flags
	fs := newFlagSet(os.Stderr, &f)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if f.profiling {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadFromFile(f.configFile)
	if err != nil {
		log.Error().Err(errgo.Wrap(err, "failed to load config")).Send()
		return 1
	}

	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Error().Err(errgo.Wrap(err, "invalid log level")).Send()
		return 1
	}
	zerolog.SetGlobalLevel(level)

	err = run(os.Stdout, job{
		input:    fs.Arg(0),
		search:   cfg.Search,
		showPath: f.showPath || cfg.Search.ReturnPath,
		check:    f.check,
		logger:   log.Logger,
	})
	if err != nil {
		log.Error().Err(err).Msg("hillclimb failed")
		return 1
	}

	return 0
}
