package game

import "math/rand"

// Cell densities for generated boards, as chances out of 100 per interior cell.
const (
	wallChance = 8
	gemChance  = 10
	mineChance = 7
	lifeChance = 2
)

// GenerateBoard builds a bordered board with randomly scattered walls, gems,
// mines and extra lives, plus a spawn position kept clear together with its
// four neighbours so the first tick always has somewhere to go. The same seed
// always yields the same board.
func GenerateBoard(rows, cols int, seed int64) (*GameBoard, Position) {
	rng := rand.New(rand.NewSource(seed))
	board := NewGameBoard(rows, cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row == 0 || col == 0 || row == rows-1 || col == cols-1 {
				board.SetCell(Position{Row: row, Col: col}, CellWall)
			}
		}
	}

	spawn := Position{Row: rows / 2, Col: cols / 2}

	gemCount := 0
	for row := 1; row < rows-1; row++ {
		for col := 1; col < cols-1; col++ {
			p := Position{Row: row, Col: col}
			if isNearSpawn(p, spawn) {
				continue
			}

			switch roll := rng.Intn(100); {
			case roll < wallChance:
				board.SetCell(p, CellWall)
			case roll < wallChance+gemChance:
				board.SetCell(p, CellGem)
				gemCount++
			case roll < wallChance+gemChance+mineChance:
				board.SetCell(p, CellMine)
			case roll < wallChance+gemChance+mineChance+lifeChance:
				board.SetCell(p, CellLife)
			}
		}
	}

	// A board without gems cannot be won; force one in.
	if gemCount == 0 {
		board.SetCell(Position{Row: 1, Col: 1}, CellGem)
	}

	return board, spawn
}

func isNearSpawn(p, spawn Position) bool {
	dRow := p.Row - spawn.Row
	dCol := p.Col - spawn.Col
	return dRow >= -1 && dRow <= 1 && dCol >= -1 && dCol <= 1
}

// CountGems is used by the game state to know how many gems are left to win.
func (b *GameBoard) CountGems() int {
	count := 0
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.cells[row][col].Kind == CellGem {
				count++
			}
		}
	}
	return count
}
