package game

import "sync"

type CellKind int

const (
	CellEmpty CellKind = iota
	CellWall
	CellGem
	CellMine
	CellLife
)

type Cell struct {
	Kind CellKind
}

// GameBoard is the grid the game is played on. Besides the cells it carries
// the release rendezvous: a condition the move loop broadcasts on after every
// committed move, which a delegating robot waits on before its next tick.
type GameBoard struct {
	Rows, Cols int
	cells      [][]Cell

	releaseMu   sync.Mutex
	releaseCond *sync.Cond
	releaseSeq  uint64
}

func NewGameBoard(rows, cols int) *GameBoard {
	cells := make([][]Cell, rows)
	for row := 0; row < rows; row++ {
		cells[row] = make([]Cell, cols)
	}

	board := &GameBoard{
		Rows:  rows,
		Cols:  cols,
		cells: cells,
	}
	board.releaseCond = sync.NewCond(&board.releaseMu)
	return board
}

func (b *GameBoard) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

func (b *GameBoard) CellAt(p Position) Cell {
	return b.cells[p.Row][p.Col]
}

func (b *GameBoard) SetCell(p Position, kind CellKind) {
	b.cells[p.Row][p.Col] = Cell{Kind: kind}
}

// TryMove computes what a move from position `from` in `direction` would do,
// without mutating the board. The player slides cell by cell until a wall or
// the board edge stops it, collecting gems and extra lives on the way; a mine
// on the path kills. It is the single authoritative move operation: probing a
// direction and committing it use the same call, so probing directions that
// are never committed is always safe.
func (b *GameBoard) TryMove(from Position, direction Direction, playerID int) MoveResult {
	dRow, dCol := direction.Offset()

	result := MoveResult{Destination: from}
	current := from

	for {
		next := Position{Row: current.Row + dRow, Col: current.Col + dCol}
		if !b.InBounds(next) || b.CellAt(next).Kind == CellWall {
			break
		}

		switch b.CellAt(next).Kind {
		case CellMine:
			result.Outcome = MoveDead
			result.HitMine = next
			result.Destination = current
			return result
		case CellGem:
			result.CollectedGems = append(result.CollectedGems, next)
		case CellLife:
			result.CollectedLives = append(result.CollectedLives, next)
		}
		current = next
	}

	if current == from {
		return MoveResult{Outcome: MoveInvalid, Destination: from}
	}

	result.Outcome = MoveAlive
	result.Destination = current
	return result
}

// ReleaseGeneration snapshots the release counter. A robot takes the snapshot
// before committing its move so a release that lands between commit and wait
// is never missed.
func (b *GameBoard) ReleaseGeneration() uint64 {
	b.releaseMu.Lock()
	defer b.releaseMu.Unlock()
	return b.releaseSeq
}

// Release lets any waiting robot proceed to its next tick. Called by the
// game loop after a committed move has been processed.
func (b *GameBoard) Release() {
	b.releaseMu.Lock()
	b.releaseSeq++
	b.releaseMu.Unlock()
	b.releaseCond.Broadcast()
}

// wakeWaiters re-runs every waiter's predicate without counting as a release.
// The stop protocol keeps calling this until the delegation goroutine exits.
func (b *GameBoard) wakeWaiters() {
	b.releaseCond.Broadcast()
}

// AwaitReleaseSince blocks until a release newer than the `since` snapshot
// arrives, or until cancelled reports true.
func (b *GameBoard) AwaitReleaseSince(since uint64, cancelled func() bool) {
	b.releaseMu.Lock()
	defer b.releaseMu.Unlock()
	for b.releaseSeq == since && !cancelled() {
		b.releaseCond.Wait()
	}
}
