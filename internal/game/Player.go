package game

import "sync"

// Player is the avatar being steered, by a human or by a delegating robot.
// Its board binding (location) may be severed, in which case probes degrade
// to no-ops until it is bound again.
type Player struct {
	Name string
	ID   int

	mu       sync.Mutex
	location *Position
	gems     int
}

func NewPlayer(name string, id int, spawn Position) *Player {
	return &Player{
		Name:     name,
		ID:       id,
		location: &spawn,
	}
}

// Location returns a copy of the player's current position, or nil when the
// player is not bound to the board.
func (p *Player) Location() *Position {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

func (p *Player) Bind(pos Position) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = &pos
}

// Unbind severs the player from the board.
func (p *Player) Unbind() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = nil
}

func (p *Player) Gems() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gems
}

func (p *Player) addGems(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gems += count
}
