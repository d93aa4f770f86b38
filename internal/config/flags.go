package config

import (
	"flag"
	"io"

	"github.com/peterbourgon/ff/v3"
)

// ParseFlags parses command-line arguments into a validated Config. Every
// flag can also be set through a BUSYCRAB_-prefixed environment variable.
// The returned bool reports whether --version was requested, in which case
// the Config is zero and the caller should print the version and exit.
// flag.ErrHelp is returned as-is for --help.
func ParseFlags(name string, args []string, usage io.Writer) (Config, bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)

	interval := fs.Int("interval", DefaultIntervalSeconds, "seconds between pointer jiggles")
	fs.IntVar(interval, "i", DefaultIntervalSeconds, "seconds between pointer jiggles (shorthand)")

	wiggle := fs.Int("wiggle", DefaultWigglePixels, "pointer movement distance in pixels")
	fs.IntVar(wiggle, "w", DefaultWigglePixels, "pointer movement distance in pixels (shorthand)")

	motionName := fs.String("motion", DefaultMotion, "animation variant: crab, matrix, clock, mandelbrot or none")
	fs.StringVar(motionName, "m", DefaultMotion, "animation variant (shorthand)")

	verbose := fs.Bool("verbose", false, "log activity to busycrab.log")
	fs.BoolVar(verbose, "v", false, "log activity to busycrab.log (shorthand)")

	showVersion := fs.Bool("version", false, "print version and exit")

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("BUSYCRAB")); err != nil {
		return Config{}, false, err
	}

	if *showVersion {
		return Config{}, true, nil
	}

	cfg, err := New(*interval, *wiggle, *motionName, *verbose)
	return cfg, false, err
}
