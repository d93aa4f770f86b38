// Package app wires the configuration into the activity runner and the
// animation driver, and coordinates graceful shutdown of both.
package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/guinetik/busycrab/internal/activity"
	"github.com/guinetik/busycrab/internal/config"
	"github.com/guinetik/busycrab/internal/platform"
	"github.com/guinetik/busycrab/internal/ui"
)

// joinTimeout bounds how long shutdown waits for the activity loop. A loop
// that misses this deadline is a defect, reported as an error.
const joinTimeout = 5 * time.Second

// App is the process orchestrator. It owns the two long-lived tasks and
// the signal handling that stops them.
type App struct {
	cfg     config.Config
	adapter platform.Adapter
	runner  *activity.Runner

	// Extra program options, used by tests to run the driver headless.
	teaOpts []tea.ProgramOption
}

// New constructs the orchestrator for the current platform.
func New(cfg config.Config) (*App, error) {
	adapter, err := platform.New()
	if err != nil {
		return nil, fmt.Errorf("platform adapter: %w", err)
	}
	return &App{
		cfg:     cfg,
		adapter: adapter,
		runner:  activity.NewRunner(adapter, cfg),
	}, nil
}

// Run starts the activity loop and the animation driver, then blocks until
// an interrupt or a quit key stops them both. It returns nil on graceful
// shutdown.
func (a *App) Run() error {
	closeLogs, err := a.setupLogging()
	if err != nil {
		return err
	}
	defer closeLogs()

	log.Printf("busycrab: starting (platform=%s interval=%ds wiggle=%dpx motion=%s)",
		a.adapter.Name(), a.cfg.IntervalSeconds, a.cfg.WigglePixels, a.cfg.Motion)

	if err := a.runner.Start(); err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if a.cfg.Motion.Fullscreen() {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, a.teaOpts...)
	p := tea.NewProgram(ui.NewModel(a.cfg.Motion), opts...)

	// First signal wins; repeats drain into the buffered channel and are
	// ignored because the quit is already under way.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, signalsForPlatform()...)
	defer signal.Stop(sigCh)

	go func() {
		sig := <-sigCh
		log.Printf("busycrab: received %v, shutting down", sig)
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		_ = a.runner.StopWithTimeout(joinTimeout)
		return fmt.Errorf("animation driver: %w", err)
	}

	if err := a.runner.StopWithTimeout(joinTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Printf("busycrab: shut down cleanly")
	return nil
}

// setupLogging routes the log stream. The animation owns the terminal, so
// verbose logs go to a file; without --verbose they are dropped entirely.
func (a *App) setupLogging() (func(), error) {
	if !a.cfg.Verbose {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile("busycrab.log", "busycrab")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
