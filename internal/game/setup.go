package game

import (
	"strings"

	"github.com/aaronzipp/life-total/internal/models"
)

// DefaultSettings is the table most Commander pods sit down to
func DefaultSettings() models.GameSettings {
	return models.GameSettings{
		PlayerCount:      DefaultPlayerCount,
		StartingLife:     DefaultStartingLife,
		CommanderFormat:  true,
		LifeLinkEnabled:  true,
		FivePlayerLayout: models.LayoutThreeVsTwo,
	}
}

// NewPlayer creates the player for a seat with full life and no flags set
func NewPlayer(position, startingLife int) models.Player {
	return models.Player{
		ID:              models.PlayerID(position),
		Name:            models.DefaultPlayerName(position),
		Life:            startingLife,
		MaxLife:         startingLife,
		CommanderDamage: map[string]int{},
		Position:        position,
	}
}

// NewState builds the opening state for the given settings
func NewState(settings models.GameSettings) models.GameState {
	players := make([]models.Player, 0, settings.PlayerCount)
	for pos := 1; pos <= settings.PlayerCount; pos++ {
		players = append(players, NewPlayer(pos, settings.StartingLife))
	}
	return models.GameState{
		Players:  players,
		Settings: settings,
	}
}

// normalizeName trims a submitted name and falls back to the seat default
func normalizeName(name string, position int) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.DefaultPlayerName(position)
	}
	if len([]rune(name)) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}
