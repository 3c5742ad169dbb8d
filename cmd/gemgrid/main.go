package main

import (
	"fmt"
	"os"

	"github.com/Mshel/gemgrid/internal/game"
	"github.com/Mshel/gemgrid/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Local runner: same game, no SSH in between.
func main() {
	dbPath := os.Getenv(game.EnvHighScorePath)
	if dbPath == "" {
		dbPath = game.DefaultHighScorePath
	}
	highScores, err := game.NewHighScoreService(dbPath)
	if err != nil {
		log.Fatal("Failed to open high score store", "path", dbPath, "error", err)
	}
	defer highScores.Close()

	p := tea.NewProgram(ui.NewControllerModel(highScores, 80, 30), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
