package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/dropdown-control/internal/logging/events"
	"github.com/atomicstack/dropdown-control/internal/ui"
)

// Option is one selectable entry for the dropdown.
type Option = ui.Option

// Config captures the application-level settings the UI needs.
type Config struct {
	Width       int
	Height      int
	MaxVisible  int
	Placeholder string
	Options     []Option
}

// defaultOptions seeds the widget when the caller supplies none, so that
// running the binary bare still shows a working menu.
func defaultOptions() []Option {
	return []Option{
		{Label: "Alpha", Value: "alpha"},
		{Label: "Bravo", Value: "bravo"},
		{Label: "Charlie", Value: "charlie"},
		{Label: "Delta", Value: "delta"},
		{Label: "Echo", Value: "echo"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(cfg Config) error {
	options := cfg.Options
	if len(options) == 0 {
		options = defaultOptions()
	}

	model := ui.NewModel(options, cfg.Width, cfg.Height, cfg.MaxVisible, cfg.Placeholder)
	program := tea.NewProgram(model, tea.WithAltScreen())

	_, err := program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(err)
	return err
}
