package game

const (
	DefaultBoardRows = 24
	DefaultBoardCols = 48
	DefaultLives     = 3

	directionChannelSize = 8
	updateChannelSize    = 64

	// Environment variables read by the server binary.
	EnvHostKeyPath       = "GEMGRID_PRIVATE_KEY_PATH"
	EnvHighScorePath     = "GEMGRID_HIGHSCORE_DB"
	EnvIntervalLuaScript = "GEMGRID_INTERVAL_LUA"
)
