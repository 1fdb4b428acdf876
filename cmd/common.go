package cmd

import (
	"fmt"
	"os"

	"github.com/linkerage/midiseq/config"
	"github.com/linkerage/midiseq/logger"
	"github.com/linkerage/midiseq/midi"
	"github.com/linkerage/midiseq/sequencer"
)

// OwnerFlag is bound to the root command's --owner flag.
var OwnerFlag string

// App bundles the wired-up stack shared by all subcommands.
type App struct {
	Cfg     *config.Config
	Log     *logger.Logger
	Manager *sequencer.Manager
	Owner   string

	sink midi.Sink
}

// Setup loads the config and builds the manager stack. The base sink is
// a real MIDI port when one is configured, otherwise the log.
func Setup() (*App, error) {
	return SetupWithSink(nil)
}

// SetupWithSink is Setup with an extra sink layered in front of the
// configured one; the watch command uses it to feed the TUI.
func SetupWithSink(tee func(midi.Event)) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	var sink midi.Sink
	if cfg.MIDIPort != "" {
		sink = midi.NewPortSink(cfg.MIDIPort)
	} else {
		sink = midi.NewLogSink(log)
	}
	if tee != nil {
		base := sink
		sink = midi.FuncSink(func(e midi.Event) error {
			tee(e)
			return base.Emit(e)
		})
	}

	store := sequencer.NewStore(cfg.StorageDir)
	return &App{
		Cfg:     cfg,
		Log:     log,
		Manager: sequencer.NewManager(store, sink, log),
		Owner:   resolveOwner(cfg),
		sink:    sink,
	}, nil
}

// Close flushes the logger and releases the MIDI port if one was opened.
func (a *App) Close() {
	if ps, ok := a.sink.(*midi.PortSink); ok {
		ps.Close()
	}
	a.Log.Sync()
}

// resolveOwner picks the owner identity: --owner flag, then config, then
// $USER, then a fixed fallback.
func resolveOwner(cfg *config.Config) string {
	if OwnerFlag != "" {
		return OwnerFlag
	}
	if cfg.Owner != "" {
		return cfg.Owner
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "default"
}
