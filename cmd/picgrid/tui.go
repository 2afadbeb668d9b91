package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"picgrid/internal/config"
	"picgrid/internal/eventbus"
	"picgrid/internal/logging"
	"picgrid/internal/ui"
)

func runTUI(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logPath := cfg.UISettings.LogFile
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(filepath.Dir(ctx.configPath), logPath)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		logging.Discard()
	} else if session, err := logging.Setup(logPath); err != nil {
		logging.Discard()
	} else {
		defer session.Close()
	}
	log.Printf("picgrid starting (config %s)", ctx.configPath)

	// Subscribers stay attached; Close drains whatever is still queued.
	bus := eventbus.New(0)
	defer bus.Close()
	logging.SubscribeActivity(bus)

	model, err := ui.NewModel(bus, cfg)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	model.SetProgram(program)

	svc := config.NewConfigServiceWithBus(ctx.configPath, bus)
	config.WatchTheme(bus, svc, func(err error) {
		program.Send(ui.EventMsg{Event: eventbus.ErrorEvent{Message: "failed to save settings", Err: err}})
	})
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		program.Send(ui.EventMsg{Event: e})
	})

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	log.Printf("picgrid exiting")
	return nil
}
