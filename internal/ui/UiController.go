package ui

import (
	"time"

	"github.com/Mshel/gemgrid/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	GameOverScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Play, 1 for Leaderboard

type PlayMode int

const (
	ModeManual PlayMode = iota
	ModeRobotRandom
	ModeRobotSmart
)

func (m PlayMode) String() string {
	switch m {
	case ModeRobotRandom:
		return "robot/random"
	case ModeRobotSmart:
		return "robot/smart"
	default:
		return "manual"
	}
}

func (m PlayMode) strategy() game.Strategy {
	if m == ModeRobotSmart {
		return game.StrategySmart
	}
	return game.StrategyRandom
}

type SetupSubmitMsg struct {
	Name string
	Mode PlayMode
}

type GameFinishedMsg struct {
	Won bool
}

type ShowLeaderboardMsg struct{}

type ControllerModel struct {
	CurrentScreen Screen

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	HighScores *game.HighScoreService

	// RobotInterval paces any robot started from this session; the server
	// wires a Lua-scripted generator here when one is configured.
	RobotInterval game.Generator

	gameManager *game.GameManager
	playerName  string
	mode        PlayMode

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(highScores *game.HighScoreService, screenWidth, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,
		IntroModel:    NewIntroModel(screenWidth, screenHeight),
		SetupModel:    NewSetupModel(screenWidth, screenHeight),
		HighScores:    highScores,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game loading..."
	case GameOverScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return ""
	default:
		return "Unknown screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.teardown()
		return m, tea.Quit
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.ScreenWidth = size.Width
		m.ScreenHeight = size.Height
	}

	switch msg := msg.(type) {
	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		m.GameModel = NewGameOverModel(m.HighScores, nil, "", m.ScreenWidth, m.ScreenHeight)
		m.CurrentScreen = GameOverScreen
		return m, nil

	case SetupSubmitMsg:
		return m.startGame(msg)

	case GameFinishedMsg:
		return m.finishGame(msg.Won)
	}

	return m.routeToScreen(msg)
}

func (m ControllerModel) startGame(setup SetupSubmitMsg) (tea.Model, tea.Cmd) {
	m.playerName = setup.Name
	m.mode = setup.Mode

	m.gameManager = game.NewGameManager(setup.Name, setup.Mode.strategy(), time.Now().UnixNano())
	if m.RobotInterval != nil {
		m.gameManager.Robot.Interval = m.RobotInterval
	}
	go m.gameManager.StartGameLoop()

	delegated := setup.Mode != ModeManual
	if delegated {
		m.gameManager.Robot.StartDelegation(m.gameManager)
	}
	log.Info("game started", "player", setup.Name, "mode", setup.Mode.String())

	gameModel := NewGameModel(m.gameManager, delegated, m.ScreenWidth, m.ScreenHeight)
	m.GameModel = gameModel
	m.CurrentScreen = GameScreen
	return m, gameModel.Init()
}

func (m ControllerModel) finishGame(won bool) (tea.Model, tea.Cmd) {
	if m.gameManager == nil {
		return m, nil
	}
	state := m.gameManager.State
	m.gameManager.StopGameLoop()

	if m.HighScores != nil {
		err := m.HighScores.SaveScore(
			m.playerName,
			state.Player().Gems(),
			state.MovesMade(),
			state.Lives(),
			m.mode.String(),
			won,
		)
		if err != nil {
			log.Error("could not persist high score", "player", m.playerName, "error", err)
		}
	}

	m.GameModel = NewGameOverModel(m.HighScores, state, m.mode.String(), m.ScreenWidth, m.ScreenHeight)
	m.CurrentScreen = GameOverScreen
	return m, nil
}

func (m ControllerModel) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case GameScreen, GameOverScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	}
	return m, cmd
}

// teardown stops the session's game so no delegation goroutine outlives the
// SSH connection.
func (m *ControllerModel) teardown() {
	if m.gameManager != nil {
		m.gameManager.StopGameLoop()
	}
}
