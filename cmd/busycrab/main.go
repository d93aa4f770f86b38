package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/guinetik/busycrab/internal/app"
	"github.com/guinetik/busycrab/internal/config"
)

const appVersion = "1.0.0"

func main() {
	cfg, showVersion, err := config.ParseFlags("busycrab", os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "busycrab: %v\n", err)
		os.Exit(1)
	case showVersion:
		fmt.Printf("busycrab version %s\n", appVersion)
		os.Exit(0)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "busycrab: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "busycrab: %v\n", err)
		os.Exit(1)
	}
}
