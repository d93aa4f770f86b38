// Package config holds the validated, immutable runtime configuration.
package config

import (
	"fmt"
	"time"

	"github.com/guinetik/busycrab/internal/motion"
)

// Defaults for the CLI flags.
const (
	DefaultIntervalSeconds = 60
	DefaultWigglePixels    = 3
	DefaultMotion          = "crab"
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	// IntervalSeconds is the activity cycle length. Always >= 1.
	IntervalSeconds int

	// WigglePixels is the pointer delta magnitude. May be 0; the loop
	// still runs and still issues the (zero) injection call.
	WigglePixels int

	// Motion selects the animation variant.
	Motion motion.Variant

	// Verbose enables runtime logging.
	Verbose bool
}

// Interval returns the cycle length as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Error reports an invalid configuration value. It is fatal: the caller
// prints it and exits before any loop starts.
type Error struct {
	Flag   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid --%s: %s", e.Flag, e.Reason)
}

// New validates the raw flag values and returns the immutable Config.
func New(intervalSeconds, wigglePixels int, motionName string, verbose bool) (Config, error) {
	if intervalSeconds < 1 {
		return Config{}, &Error{Flag: "interval", Reason: fmt.Sprintf("must be a positive number of seconds, got %d", intervalSeconds)}
	}
	if wigglePixels < 0 {
		return Config{}, &Error{Flag: "wiggle", Reason: fmt.Sprintf("must be zero or more pixels, got %d", wigglePixels)}
	}

	variant, err := motion.ParseVariant(motionName)
	if err != nil {
		return Config{}, &Error{Flag: "motion", Reason: err.Error()}
	}

	return Config{
		IntervalSeconds: intervalSeconds,
		WigglePixels:    wigglePixels,
		Motion:          variant,
		Verbose:         verbose,
	}, nil
}
