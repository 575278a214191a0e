package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Reinaldo-Kn/pifatro/internal/config"
	"github.com/Reinaldo-Kn/pifatro/internal/logger"
	"github.com/Reinaldo-Kn/pifatro/internal/sound"
	"github.com/Reinaldo-Kn/pifatro/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	// The TUI owns the terminal, diagnostics go to a file.
	if err := logger.Init(); err != nil {
		log.Printf("file logger unavailable: %v", err)
	}
	defer logger.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.LogError("config load failed, falling back to defaults: %v", err)
		cfg = config.Default()
	}

	var sounds *sound.Manager
	if cfg.Game.Sound {
		sounds = sound.NewManager()
		if err := sounds.Init(); err != nil {
			logger.LogError("sound disabled: %v", err)
			sounds = nil
		} else {
			defer sounds.Close()
		}
	}

	model := ui.New(cfg.Game, sounds)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("client error: %v", err)
	}
}
