package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/gemgrid/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const leaderboardPageSize = 10

// GameOverModel renders the end-of-run screen and the persisted leaderboard.
// A nil state means the model was opened straight from the intro menu, in
// which case only the leaderboard is shown.
type GameOverModel struct {
	highScores *game.HighScoreService
	state      *game.GameState
	mode       string

	showLeaderboard bool
	selectedButton  int // 0: Exit, 1: Leaderboard
	ScreenWidth     int
	ScreenHeight    int
}

// Styles for Game Over/Leaderboard
var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

func NewGameOverModel(highScores *game.HighScoreService, state *game.GameState, mode string, w, h int) GameOverModel {
	return GameOverModel{
		highScores:      highScores,
		state:           state,
		mode:            mode,
		showLeaderboard: state == nil,
		ScreenWidth:     w,
		ScreenHeight:    h,
	}
}

func (m GameOverModel) Init() tea.Cmd { return nil }

func (m GameOverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right", "tab", "h", "l":
			m.selectedButton = 1 - m.selectedButton
		case "esc":
			m.showLeaderboard = false
		case "enter":
			if m.showLeaderboard {
				m.showLeaderboard = false
				return m, nil
			}
			if m.selectedButton == 0 {
				return m, tea.Quit
			}
			m.showLeaderboard = true
		}
	}
	return m, nil
}

func (m GameOverModel) View() string {
	if m.showLeaderboard {
		return m.renderLeaderboard()
	}
	return m.renderGameOver()
}

func (m GameOverModel) renderGameOver() string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(2, 5).
		Align(lipgloss.Center).
		Width(m.ScreenWidth - 4)

	title := messageStyle.Foreground(lipgloss.Color("9")).Render("💀 G A M E   O V E R 💀")
	stats := ""
	if m.state != nil {
		if m.state.HasWon() {
			title = messageStyle.Foreground(lipgloss.Color("42")).Render("✨ A L L   G E M S   C O L L E C T E D ✨")
		}
		stats = fmt.Sprintf("\nGems: %d   Moves: %d   Lives left: %d   Control: %s\n\n",
			m.state.Player().Gems(), m.state.MovesMade(), m.state.Lives(), m.mode)
	}

	exitButton := gameOverButtonStyle.Render("EXIT (Enter)")
	leaderboardButton := gameOverButtonStyle.Render("LEADERBOARD")
	if m.selectedButton == 0 {
		exitButton = selectedButtonStyle.Render("EXIT (Enter)")
	} else {
		leaderboardButton = selectedButtonStyle.Render("LEADERBOARD")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, exitButton, leaderboardButton)
	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, buttons)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}

func (m GameOverModel) renderLeaderboard() string {
	var tableContent strings.Builder

	nameWidth := 15
	numWidth := 7
	modeWidth := 14

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(3).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(numWidth).Render("Gems"),
		leaderboardHeaderStyle.Width(numWidth).Render("Moves"),
		leaderboardHeaderStyle.Width(modeWidth).Render("Control"),
		leaderboardHeaderStyle.Width(numWidth).Render("Won"),
	)
	tableContent.WriteString(header + "\n")

	var scores []game.Score
	if m.highScores != nil {
		var err error
		scores, err = m.highScores.GetHighScores(leaderboardPageSize, 0)
		if err != nil {
			log.Error("could not load leaderboard", "error", err)
		}
	}

	for i, score := range scores {
		won := "no"
		if score.Won {
			won = "yes"
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(3).Render(strconv.Itoa(i+1)),
			leaderboardRowStyle.Width(nameWidth).Render(score.Player),
			leaderboardRowStyle.Width(numWidth).Render(strconv.Itoa(score.Gems)),
			leaderboardRowStyle.Width(numWidth).Render(strconv.Itoa(score.Moves)),
			leaderboardRowStyle.Width(modeWidth).Render(score.Strategy),
			leaderboardRowStyle.Width(numWidth).Render(won),
		)
		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}
	if len(scores) == 0 {
		tableContent.WriteString(leaderboardRowStyle.Render("No runs recorded yet.") + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("👑 HIGH SCORES 👑")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to go back.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
