package ui

import (
	"github.com/Mshel/gemgrid/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// GameModel is the TUI for one running game. It listens on the game
// manager's update channel and forwards key presses as committed moves;
// `r` toggles robot delegation mid-game.
type GameModel struct {
	gameManager *game.GameManager
	delegated   bool

	lastOutcome  string
	MoveCount    int
	ScreenWidth  int
	ScreenHeight int
}

func NewGameModel(gameManager *game.GameManager, delegated bool, screenWidth, screenHeight int) GameModel {
	return GameModel{
		gameManager:  gameManager,
		delegated:    delegated,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GameModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameModel) listenForGameUpdates() tea.Cmd {
	return func() tea.Msg {
		return <-m.gameManager.UpdateChannel
	}
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case game.MoveAppliedMsg:
		m.MoveCount++
		m.lastOutcome = msg.Result.Outcome.String()
		return m, m.listenForGameUpdates()

	case game.PlayerDeadMsg:
		m.lastOutcome = "boom"
		return m, m.listenForGameUpdates()

	case game.GameWonMsg:
		return m, func() tea.Msg { return GameFinishedMsg{Won: true} }

	case game.GameLostMsg:
		return m, func() tea.Msg { return GameFinishedMsg{Won: false} }
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "w":
		m.gameManager.Move(game.Up)
	case "down", "s":
		m.gameManager.Move(game.Down)
	case "left", "a":
		m.gameManager.Move(game.Left)
	case "right", "d":
		m.gameManager.Move(game.Right)
	case "r":
		if m.delegated {
			m.gameManager.Robot.StopDelegation()
			m.delegated = false
			log.Info("delegation revoked", "player", m.gameManager.State.Player().Name)
		} else {
			m.gameManager.Robot.StartDelegation(m.gameManager)
			m.delegated = true
			log.Info("delegation started", "player", m.gameManager.State.Player().Name)
		}
	case "q":
		return m, func() tea.Msg { return GameFinishedMsg{Won: m.gameManager.State.HasWon()} }
	}
	return m, nil
}
