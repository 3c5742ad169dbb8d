package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const DefaultHighScorePath = "gemgrid_scores.db"
const scoreTableName = "high_scores"

type HighScoreService struct {
	db *sql.DB
}

type Score struct {
	ID        int
	Player    string
	Gems      int
	Moves     int
	LivesLeft int
	Strategy  string
	Won       bool
	CreatedAt time.Time
}

func NewHighScoreService(dbPath string) (*HighScoreService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open high score database: %w", err)
	}

	service := &HighScoreService{db: db}
	if err := service.createTable(); err != nil {
		return nil, err
	}
	return service, nil
}

func (serviceImpl *HighScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + scoreTableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		gems INTEGER NOT NULL,
		moves INTEGER NOT NULL,
		lives_left INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		won INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := serviceImpl.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

// SaveScore records one finished run. strategy is "manual" for undelegated
// play, otherwise the robot strategy name.
func (serviceImpl *HighScoreService) SaveScore(player string, gems, moves, livesLeft int, strategy string, won bool) error {
	const insertSQL = `
	INSERT INTO ` + scoreTableName + ` (player_name, gems, moves, lives_left, strategy, won)
	VALUES (?, ?, ?, ?, ?, ?);`

	_, err := serviceImpl.db.Exec(insertSQL, player, gems, moves, livesLeft, strategy, won)
	if err != nil {
		return fmt.Errorf("failed to insert high score for %s: %w", player, err)
	}
	return nil
}

// GetHighScores retrieves a paginated list of runs, best first: won runs,
// then most gems, then fewest moves.
func (serviceImpl *HighScoreService) GetHighScores(limit, offset int) ([]Score, error) {
	const selectSQL = `
	SELECT id, player_name, gems, moves, lives_left, strategy, won, created_at
	FROM ` + scoreTableName + `
	ORDER BY won DESC, gems DESC, moves ASC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var score Score
		var createdAt string
		err := rows.Scan(&score.ID, &score.Player, &score.Gems, &score.Moves,
			&score.LivesLeft, &score.Strategy, &score.Won, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		parsedCreatedAt, err := time.Parse(time.RFC3339, createdAt)
		if err == nil {
			score.CreatedAt = parsedCreatedAt
		} else {
			log.Debug("could not parse score timestamp", "id", score.ID, "raw", createdAt, "error", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return scores, nil
}

func (serviceImpl *HighScoreService) GetTotalScoreCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + scoreTableName + `;`
	var count int
	if err := serviceImpl.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}
