package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAliveMoveCollectsPickups(t *testing.T) {
	board := NewGameBoard(5, 5)
	board.SetCell(Position{Row: 2, Col: 2}, CellGem)
	board.SetCell(Position{Row: 2, Col: 3}, CellLife)
	player := NewPlayer("tester", 1, Position{Row: 2, Col: 0})
	state := NewGameState(board, player, 2)
	require.Equal(t, 1, state.GemsLeft())

	result := board.TryMove(Position{Row: 2, Col: 0}, Right, 1)
	state.Apply(result)

	assert.Equal(t, 0, state.GemsLeft())
	assert.Equal(t, 3, state.Lives())
	assert.Equal(t, 1, player.Gems())
	assert.Equal(t, 1, state.MovesMade())
	assert.Equal(t, CellEmpty, board.CellAt(Position{Row: 2, Col: 2}).Kind)
	require.NotNil(t, player.Location())
	assert.Equal(t, result.Destination, *player.Location())
	assert.True(t, state.HasWon())
}

func TestApplyDeadMoveCostsALife(t *testing.T) {
	board := NewGameBoard(5, 5)
	board.SetCell(Position{Row: 2, Col: 2}, CellMine)
	player := NewPlayer("tester", 1, Position{Row: 2, Col: 0})
	state := NewGameState(board, player, 2)

	result := board.TryMove(Position{Row: 2, Col: 0}, Right, 1)
	require.Equal(t, MoveDead, result.Outcome)
	state.Apply(result)

	assert.Equal(t, 1, state.Lives())
	assert.False(t, state.HasLost())
	require.NotNil(t, player.Location())
	assert.Equal(t, Position{Row: 2, Col: 0}, *player.Location(), "a dying move is not applied")
}

func TestLosingLastLifeSeversBinding(t *testing.T) {
	board := NewGameBoard(5, 5)
	board.SetCell(Position{Row: 2, Col: 2}, CellMine)
	player := NewPlayer("tester", 1, Position{Row: 2, Col: 0})
	state := NewGameState(board, player, 1)

	result := board.TryMove(Position{Row: 2, Col: 0}, Right, 1)
	state.Apply(result)

	assert.True(t, state.HasLost())
	assert.Nil(t, player.Location())
}

func TestApplyInvalidMoveChangesNothing(t *testing.T) {
	board := NewGameBoard(3, 3)
	board.SetCell(Position{Row: 1, Col: 2}, CellWall)
	player := NewPlayer("tester", 1, Position{Row: 1, Col: 1})
	state := NewGameState(board, player, 3)

	result := board.TryMove(Position{Row: 1, Col: 1}, Right, 1)
	require.Equal(t, MoveInvalid, result.Outcome)
	state.Apply(result)

	assert.Equal(t, 0, state.MovesMade())
	assert.Equal(t, 3, state.Lives())
	assert.Equal(t, Position{Row: 1, Col: 1}, *player.Location())
}
