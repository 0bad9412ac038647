package game

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/aaronzipp/life-total/internal/models"
)

// LifeChangeActions turns a life gesture on one panel into the actions to
// dispatch. With life link on for that player, every opponent gets the same
// change before the player does.
func LifeChangeActions(state models.GameState, playerID string, amount int) []models.PlayerAction {
	player, ok := state.FindPlayer(playerID)
	if !ok || amount == 0 {
		return nil
	}

	var actions []models.PlayerAction
	if state.Settings.LifeLinkEnabled && player.LifeLinkActive {
		for _, opp := range state.Opponents(playerID) {
			actions = append(actions, models.ChangeLife{PlayerID: opp.ID, Amount: amount})
		}
	}
	return append(actions, models.ChangeLife{PlayerID: playerID, Amount: amount})
}

// DirectLifeEditActions handles a typed life total. Input that is not a
// non-negative integer yields no actions.
func DirectLifeEditActions(state models.GameState, playerID, raw string) []models.PlayerAction {
	newLife, ok := ParseLife(raw)
	if !ok {
		return nil
	}
	player, found := state.FindPlayer(playerID)
	if !found {
		return nil
	}
	return LifeChangeActions(state, playerID, newLife-player.Life)
}

// ParseLife parses a typed life total, rejecting garbage and negatives
func ParseLife(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseDelta parses a signed life or damage step
func ParseDelta(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// Picker chooses an index in [0, n)
type Picker interface {
	Intn(n int) int
}

// RandomStartingPlayer picks a starting player uniformly among the current players
func RandomStartingPlayer(state models.GameState, rng Picker) (models.PlayerAction, bool) {
	if len(state.Players) == 0 {
		return nil, false
	}
	p := state.Players[rng.Intn(len(state.Players))]
	return models.SetStartingPlayer{PlayerID: p.ID}, true
}

// ParseSettingsPatch reads a settings form. Fields that are missing or do not
// parse are left out of the patch; range checks happen here so nothing
// invalid is dispatched.
func ParseSettingsPatch(form url.Values) models.SettingsPatch {
	var patch models.SettingsPatch

	if v := form.Get("playerCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= MinPlayers && n <= MaxPlayers {
			patch.PlayerCount = &n
		}
	}
	if v := form.Get("startingLife"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxStartingLife {
			patch.StartingLife = &n
		}
	}
	if v := form.Get("commanderFormat"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			patch.CommanderFormat = &b
		}
	}
	if v := form.Get("lifeLinkEnabled"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			patch.LifeLinkEnabled = &b
		}
	}
	if v := form.Get("fivePlayerLayout"); v != "" {
		l := models.FivePlayerLayout(v)
		if l.Valid() {
			patch.FivePlayerLayout = &l
		}
	}
	return patch
}

// SplitPatch breaks a patch into one UpdateSettings per field, the way the
// settings panel reports each change separately
func SplitPatch(patch models.SettingsPatch) []models.PlayerAction {
	var actions []models.PlayerAction
	if patch.PlayerCount != nil {
		actions = append(actions, models.UpdateSettings{Patch: models.SettingsPatch{PlayerCount: patch.PlayerCount}})
	}
	if patch.StartingLife != nil {
		actions = append(actions, models.UpdateSettings{Patch: models.SettingsPatch{StartingLife: patch.StartingLife}})
	}
	if patch.CommanderFormat != nil {
		actions = append(actions, models.UpdateSettings{Patch: models.SettingsPatch{CommanderFormat: patch.CommanderFormat}})
	}
	if patch.LifeLinkEnabled != nil {
		actions = append(actions, models.UpdateSettings{Patch: models.SettingsPatch{LifeLinkEnabled: patch.LifeLinkEnabled}})
	}
	if patch.FivePlayerLayout != nil {
		actions = append(actions, models.UpdateSettings{Patch: models.SettingsPatch{FivePlayerLayout: patch.FivePlayerLayout}})
	}
	return actions
}
