package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/guinetik/busycrab/internal/motion"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        Config
		wantVersion bool
		wantErr     bool
	}{
		{
			name: "no flags gives defaults",
			args: nil,
			want: Config{IntervalSeconds: 60, WigglePixels: 3, Motion: motion.VariantCrab},
		},
		{
			name: "long flags",
			args: []string{"--interval", "120", "--wiggle", "5", "--motion", "matrix", "--verbose"},
			want: Config{IntervalSeconds: 120, WigglePixels: 5, Motion: motion.VariantMatrix, Verbose: true},
		},
		{
			name: "short flags",
			args: []string{"-i", "30", "-w", "0", "-m", "none"},
			want: Config{IntervalSeconds: 30, WigglePixels: 0, Motion: motion.VariantNone},
		},
		{
			name:        "version",
			args:        []string{"--version"},
			wantVersion: true,
		},
		{
			name:    "zero interval rejected",
			args:    []string{"--interval", "0"},
			wantErr: true,
		},
		{
			name:    "negative wiggle rejected",
			args:    []string{"--wiggle", "-2"},
			wantErr: true,
		},
		{
			name:    "unknown motion rejected",
			args:    []string{"--motion", "disco"},
			wantErr: true,
		},
		{
			name:    "unknown flag rejected",
			args:    []string{"--frob"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotVersion, err := ParseFlags("busycrab", tt.args, io.Discard)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFlags(%v) expected error, got %+v", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags(%v) unexpected error: %v", tt.args, err)
			}
			if gotVersion != tt.wantVersion {
				t.Errorf("version = %v, want %v", gotVersion, tt.wantVersion)
			}
			if !tt.wantVersion && got != tt.want {
				t.Errorf("ParseFlags(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseFlagsEnvOverride(t *testing.T) {
	t.Setenv("BUSYCRAB_INTERVAL", "15")
	t.Setenv("BUSYCRAB_MOTION", "clock")

	got, _, err := ParseFlags("busycrab", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() unexpected error: %v", err)
	}
	if got.IntervalSeconds != 15 {
		t.Errorf("IntervalSeconds = %d, want 15", got.IntervalSeconds)
	}
	if got.Motion != motion.VariantClock {
		t.Errorf("Motion = %v, want clock", got.Motion)
	}

	// Explicit flags still win over the environment.
	got, _, err = ParseFlags("busycrab", []string{"--interval", "45"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() unexpected error: %v", err)
	}
	if got.IntervalSeconds != 45 {
		t.Errorf("IntervalSeconds = %d, want 45", got.IntervalSeconds)
	}
}

func TestParseFlagsHelp(t *testing.T) {
	_, _, err := ParseFlags("busycrab", []string{"--help"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}
