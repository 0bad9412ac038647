package models

// PlayerAction is a state transition request. The set of variants is closed:
// only types in this package implement it.
type PlayerAction interface {
	actionName() string
}

// ActionName returns a short label for logging
func ActionName(a PlayerAction) string {
	if a == nil {
		return "none"
	}
	return a.actionName()
}

// ChangeLife adds Amount (possibly negative) to a player's life
type ChangeLife struct {
	PlayerID string
	Amount   int
}

// ChangeCommanderDamage adds Amount to the damage PlayerID received from FromPlayerID
type ChangeCommanderDamage struct {
	PlayerID     string
	FromPlayerID string
	Amount       int
}

// ResetPlayer restores a single player to their starting life
type ResetPlayer struct {
	PlayerID string
}

// EliminatePlayer marks a player as out of the game
type EliminatePlayer struct {
	PlayerID string
}

// SetStartingPlayer marks who acts first
type SetStartingPlayer struct {
	PlayerID string
}

// UpdateSettings merges a partial settings update
type UpdateSettings struct {
	Patch SettingsPatch
}

// ResetGame restores every player and clears the turn counters
type ResetGame struct{}

// ToggleLifeLink flips a player's life link flag
type ToggleLifeLink struct {
	PlayerID string
}

// RenamePlayer changes a player's display name
type RenamePlayer struct {
	PlayerID string
	Name     string
}

func (ChangeLife) actionName() string            { return "change_life" }
func (ChangeCommanderDamage) actionName() string { return "change_commander_damage" }
func (ResetPlayer) actionName() string           { return "reset_player" }
func (EliminatePlayer) actionName() string       { return "eliminate_player" }
func (SetStartingPlayer) actionName() string     { return "set_starting_player" }
func (UpdateSettings) actionName() string        { return "update_settings" }
func (ResetGame) actionName() string             { return "reset_game" }
func (ToggleLifeLink) actionName() string        { return "toggle_life_link" }
func (RenamePlayer) actionName() string          { return "rename_player" }
