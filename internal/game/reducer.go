package game

import (
	"github.com/aaronzipp/life-total/internal/models"
)

// Apply returns the state that results from applying action to state.
// It never fails: actions naming unknown players leave the state as it is.
// The input state is never modified.
func Apply(state models.GameState, action models.PlayerAction) models.GameState {
	switch a := action.(type) {
	case models.ChangeLife:
		return updatePlayer(state, a.PlayerID, func(p *models.Player) {
			p.Life = max(0, p.Life+a.Amount)
		})

	case models.ChangeCommanderDamage:
		// a player cannot damage themselves
		if a.FromPlayerID == a.PlayerID {
			return state
		}
		return updatePlayer(state, a.PlayerID, func(p *models.Player) {
			p.CommanderDamage[a.FromPlayerID] = max(0, p.CommanderDamage[a.FromPlayerID]+a.Amount)
		})

	case models.ResetPlayer:
		return updatePlayer(state, a.PlayerID, func(p *models.Player) {
			p.Life = p.MaxLife
			p.CommanderDamage = map[string]int{}
			p.IsEliminated = false
		})

	case models.EliminatePlayer:
		return updatePlayer(state, a.PlayerID, func(p *models.Player) {
			p.IsEliminated = true
		})

	case models.SetStartingPlayer:
		next := state.Clone()
		for i := range next.Players {
			next.Players[i].IsStartingPlayer = next.Players[i].ID == a.PlayerID
		}
		return next

	case models.UpdateSettings:
		return applySettings(state, a.Patch)

	case models.ResetGame:
		next := state.Clone()
		for i := range next.Players {
			p := &next.Players[i]
			p.Life = p.MaxLife
			p.CommanderDamage = map[string]int{}
			p.IsEliminated = false
			p.IsStartingPlayer = false
		}
		next.CurrentTurn = 0
		next.GameStarted = false
		return next

	case models.ToggleLifeLink:
		return updatePlayer(state, a.PlayerID, func(p *models.Player) {
			p.LifeLinkActive = !p.LifeLinkActive
		})

	case models.RenamePlayer:
		return updatePlayer(state, a.PlayerID, func(p *models.Player) {
			p.Name = normalizeName(a.Name, p.Position)
		})
	}
	return state
}

// ApplyAll folds actions over state in order
func ApplyAll(state models.GameState, actions ...models.PlayerAction) models.GameState {
	for _, a := range actions {
		state = Apply(state, a)
	}
	return state
}

// updatePlayer copies state and runs fn on the matching player's copy.
// Unknown ids return the original state untouched.
func updatePlayer(state models.GameState, id string, fn func(*models.Player)) models.GameState {
	idx := -1
	for i, p := range state.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state
	}

	next := state
	next.Players = make([]models.Player, len(state.Players))
	copy(next.Players, state.Players)
	p := state.Players[idx].Clone()
	fn(&p)
	next.Players[idx] = p
	return next
}

// applySettings merges patch into the settings. The player-count and
// starting-life side effects are both judged against the settings before the
// merge, so changing both in one patch applies each once.
func applySettings(state models.GameState, patch models.SettingsPatch) models.GameState {
	patch = sanitizePatch(patch)
	prev := state.Settings

	merged := prev
	if patch.PlayerCount != nil {
		merged.PlayerCount = *patch.PlayerCount
	}
	if patch.StartingLife != nil {
		merged.StartingLife = *patch.StartingLife
	}
	if patch.CommanderFormat != nil {
		merged.CommanderFormat = *patch.CommanderFormat
	}
	if patch.LifeLinkEnabled != nil {
		merged.LifeLinkEnabled = *patch.LifeLinkEnabled
	}
	if patch.FivePlayerLayout != nil {
		merged.FivePlayerLayout = *patch.FivePlayerLayout
	}

	next := state.Clone()
	next.Settings = merged

	if patch.PlayerCount != nil && *patch.PlayerCount != prev.PlayerCount {
		n := *patch.PlayerCount
		switch {
		case n > len(next.Players):
			for pos := len(next.Players) + 1; pos <= n; pos++ {
				next.Players = append(next.Players, NewPlayer(pos, merged.StartingLife))
			}
		case n < len(next.Players):
			next.Players = next.Players[:n]
		}
	}

	if patch.StartingLife != nil && *patch.StartingLife != prev.StartingLife {
		for i := range next.Players {
			next.Players[i].Life = *patch.StartingLife
			next.Players[i].MaxLife = *patch.StartingLife
		}
	}

	return next
}

// sanitizePatch drops fields that would break the state's invariants
func sanitizePatch(patch models.SettingsPatch) models.SettingsPatch {
	if patch.PlayerCount != nil && (*patch.PlayerCount < MinPlayers || *patch.PlayerCount > MaxPlayers) {
		patch.PlayerCount = nil
	}
	if patch.StartingLife != nil && *patch.StartingLife <= 0 {
		patch.StartingLife = nil
	}
	if patch.FivePlayerLayout != nil && !patch.FivePlayerLayout.Valid() {
		patch.FivePlayerLayout = nil
	}
	return patch
}
