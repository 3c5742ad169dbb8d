package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/gemgrid/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// --- Styling Definitions ---

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("172"))
	voidStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	gemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lifeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)

	robotOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	robotOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const statusPanelWidth = 28

func (m GameModel) View() string {
	mapView := mapViewStyle.Render(m.renderBoard())
	statusPanel := statusPanelStyle.Width(statusPanelWidth).Render(m.renderStatusPanel())

	combined := lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", statusPanel)
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center, combined)
}

func (m GameModel) renderBoard() string {
	board := m.gameManager.State.Board
	location := m.gameManager.State.Player().Location()

	var builder strings.Builder
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			p := game.Position{Row: row, Col: col}
			if location != nil && *location == p {
				builder.WriteString(playerStyle.Render("◉"))
				continue
			}

			switch board.CellAt(p).Kind {
			case game.CellWall:
				builder.WriteString(wallStyle.Render("█"))
			case game.CellGem:
				builder.WriteString(gemStyle.Render("◆"))
			case game.CellMine:
				builder.WriteString(mineStyle.Render("✸"))
			case game.CellLife:
				builder.WriteString(lifeStyle.Render("♥"))
			default:
				builder.WriteString(voidStyle.Render("·"))
			}
		}
		if row < board.Rows-1 {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

func (m GameModel) renderStatusPanel() string {
	state := m.gameManager.State
	player := state.Player()

	robotLine := robotOffStyle.Render("ROBOT off")
	if m.delegated {
		robotLine = robotOnStyle.Render("ROBOT on")
	}

	lines := []string{
		fmt.Sprintf("Player: %s", player.Name),
		"",
		fmt.Sprintf("Lives:     %d", state.Lives()),
		fmt.Sprintf("Gems left: %d", state.GemsLeft()),
		fmt.Sprintf("Collected: %d", player.Gems()),
		fmt.Sprintf("Moves:     %d", state.MovesMade()),
		"",
		robotLine,
	}
	if m.lastOutcome != "" {
		lines = append(lines, fmt.Sprintf("Last move: %s", m.lastOutcome))
	}
	lines = append(lines,
		"",
		"arrows/wasd  move",
		"r            toggle robot",
		"q            give up",
	)

	return strings.Join(lines, "\n")
}
