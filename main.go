package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mt32-panel/config"
	"mt32-panel/debug"
	"mt32-panel/midi"
	"mt32-panel/panel"
	"mt32-panel/theme"
	"mt32-panel/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.UI.DebugLog {
		if err := debug.Enable(); err != nil {
			fmt.Printf("debug log disabled: %v\n", err)
		}
		defer debug.Disable()
	}

	// Load theme
	palette := theme.Default()
	if cfg.UI.PaletteFile != "" {
		p, err := theme.LoadGPL(cfg.UI.PaletteFile)
		if err != nil {
			fmt.Printf("palette %s unusable, using built-in: %v\n", cfg.UI.PaletteFile, err)
		} else {
			palette = p
		}
	}
	th := theme.New(palette)

	// Create the emulated front panel
	patches := panel.NewPatches()
	display := panel.NewDisplay(panel.WallClock(), patches)
	manager := panel.NewManager(display, patches)

	// Create MIDI device manager (handles hot-plug). With autoConnect off
	// the manager never runs and only the bench keys drive the panel.
	deviceMgr := midi.NewDeviceManager(cfg.MIDI.PortName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.MIDI.AutoConnect {
		go deviceMgr.Run(ctx)
	}

	// Create and run TUI
	m := tui.NewModel(manager, deviceMgr, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
