package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Define styles
var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

var playModes = []PlayMode{ModeManual, ModeRobotRandom, ModeRobotSmart}

// SetupModel is the pre-game form: name entry plus play-mode selection.
type SetupModel struct {
	nameInput  textinput.Model
	modeIndex  int // index into playModes
	focusIndex int // 0: Name, 1: Mode Select, 2: Submit
	submitted  bool
	width      int
	height     int
}

func NewSetupModel(w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Your Gemgrid Name"
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput: ti,
		width:     w,
		height:    h,
	}
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		if s == "ctrl+c" {
			return m, tea.Quit
		}

		if s == "enter" || s == "tab" || s == "shift+tab" {
			switch m.focusIndex {
			case 0: // Name input
				switch s {
				case "enter", "tab":
					m.focusIndex = 1
					m.nameInput.Blur()
				case "shift+tab":
					m.focusIndex = 2
				}

			case 1: // Mode select
				switch s {
				case "enter", "tab":
					m.focusIndex = 2
				case "shift+tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				}

			case 2: // Submit button
				switch s {
				case "enter":
					name := strings.TrimSpace(m.nameInput.Value())
					if name == "" {
						name = "anonymous"
					}
					m.submitted = true
					mode := playModes[m.modeIndex]
					return m, func() tea.Msg {
						return SetupSubmitMsg{Name: name, Mode: mode}
					}
				case "tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				case "shift+tab":
					m.focusIndex = 1
				}
			}
			return m, nil
		}

		if m.focusIndex == 1 {
			switch s {
			case "left", "up":
				m.modeIndex = (m.modeIndex - 1 + len(playModes)) % len(playModes)
				return m, nil
			case "right", "down":
				m.modeIndex = (m.modeIndex + 1) % len(playModes)
				return m, nil
			}
		}

		if m.focusIndex == 0 {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	var sb strings.Builder

	sb.WriteString(focusedStyle.Render("Who is playing?"))
	sb.WriteString("\n\n")
	sb.WriteString(m.nameInput.View())
	sb.WriteString("\n\n")

	modeLabel := "Control"
	if m.focusIndex == 1 {
		modeLabel = "> Control"
	}
	sb.WriteString(blurredStyle.Render(modeLabel))
	sb.WriteString("\n")

	var modeLine []string
	for i, mode := range playModes {
		label := mode.String()
		if i == m.modeIndex {
			if m.focusIndex == 1 {
				label = focusedStyle.Render("[" + label + "]")
			} else {
				label = "[" + label + "]"
			}
		} else {
			label = blurredStyle.Render(" " + label + " ")
		}
		modeLine = append(modeLine, label)
	}
	sb.WriteString(strings.Join(modeLine, "  "))
	sb.WriteString("\n\n")

	if m.focusIndex == 2 {
		sb.WriteString(submitButtonStyle.Render("START"))
	} else {
		sb.WriteString(blurredButtonStyle.Render("START"))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab to move between fields, enter to submit"))

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		sb.String(),
	)
}
