package models

// GameState is an immutable snapshot of a table. Transitions build a new
// value instead of editing this one.
type GameState struct {
	Players     []Player
	Settings    GameSettings
	CurrentTurn int
	GameStarted bool
}

// Clone returns a deep copy of the state
func (s GameState) Clone() GameState {
	cp := s
	cp.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.Clone()
	}
	return cp
}

// FindPlayer returns the player with the given id
func (s GameState) FindPlayer(id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Opponents returns every player except the one with the given id, in seat order
func (s GameState) Opponents(id string) []Player {
	out := make([]Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// StartingPlayer returns the marked starting player, if any
func (s GameState) StartingPlayer() (Player, bool) {
	for _, p := range s.Players {
		if p.IsStartingPlayer {
			return p, true
		}
	}
	return Player{}, false
}
