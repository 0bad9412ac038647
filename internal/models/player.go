package models

import "strconv"

// Player is one seat at the table
type Player struct {
	ID               string
	Name             string
	Life             int
	MaxLife          int
	CommanderDamage  map[string]int // opponent playerID -> damage received
	IsStartingPlayer bool
	Position         int // 1-based seat, only used for layout
	IsEliminated     bool
	LifeLinkActive   bool
}

// PlayerID returns the id assigned to the player created at position
func PlayerID(position int) string {
	return "player-" + strconv.Itoa(position)
}

// DefaultPlayerName returns the display name used until a player is renamed
func DefaultPlayerName(position int) string {
	return "Player " + strconv.Itoa(position)
}

// Clone returns a copy of the player that shares no maps with p
func (p Player) Clone() Player {
	cp := p
	cp.CommanderDamage = make(map[string]int, len(p.CommanderDamage))
	for k, v := range p.CommanderDamage {
		cp.CommanderDamage[k] = v
	}
	return cp
}

// DamageFrom returns the commander damage received from an opponent (zero when absent)
func (p Player) DamageFrom(opponentID string) int {
	return p.CommanderDamage[opponentID]
}
