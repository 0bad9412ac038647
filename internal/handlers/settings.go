package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/models"
	"github.com/aaronzipp/life-total/internal/render"
)

// HandleOpenSettings shows the settings panel facing the player at ?position=
func (ctx *Context) HandleOpenSettings(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	state := table.State()
	position := parsePosition(r.FormValue("position"))
	writeHTML(w, render.SettingsPanel(state.Settings, game.OrientationFor(position, state.Settings), position, false))
}

// HandleCloseSettings hides the settings panel
func (ctx *Context) HandleCloseSettings(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, render.SettingsClosed(false))
}

// HandleUpdateSettings dispatches one UpdateSettings per submitted field and
// refreshes both the board and the open settings panel
func (ctx *Context) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	patch := game.ParseSettingsPatch(r.Form)
	state := ctx.dispatch(table, just(game.SplitPatch(patch)...))

	if !patch.IsEmpty() {
		ctx.Log.Info("settings updated",
			zap.String("table", table.ID),
			zap.Int("players", state.Settings.PlayerCount),
			zap.Int("startingLife", state.Settings.StartingLife),
			zap.Bool("commander", state.Settings.CommanderFormat),
			zap.Bool("lifeLink", state.Settings.LifeLinkEnabled),
			zap.String("fivePlayerLayout", string(state.Settings.FivePlayerLayout)),
		)
	}

	// seat may have disappeared if the table shrank; fall back to the first
	position := parsePosition(r.Form.Get("position"))
	if position > len(state.Players) {
		position = 1
	}
	writeHTML(w,
		render.Board(state, render.View{}),
		render.SettingsPanel(state.Settings, game.OrientationFor(position, state.Settings), position, true),
	)
}

// HandleRandomStartingPlayer marks a random current player as starting player
func (ctx *Context) HandleRandomStartingPlayer(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}

	state := ctx.dispatch(table, func(s models.GameState) []models.PlayerAction {
		if action, picked := game.RandomStartingPlayer(s, ctx.Rand); picked {
			return []models.PlayerAction{action}
		}
		return nil
	})

	if starter, found := state.StartingPlayer(); found {
		ctx.Log.Info("starting player chosen", zap.String("table", table.ID), zap.String("player", starter.ID))
	}
	writeHTML(w, render.Board(state, render.View{}), render.SettingsClosed(true))
}

// HandleResetGame restores every player and closes the settings panel
func (ctx *Context) HandleResetGame(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	state := ctx.dispatch(table, just(models.ResetGame{}))
	ctx.Log.Info("game reset", zap.String("table", table.ID))
	writeHTML(w, render.Board(state, render.View{}), render.SettingsClosed(true))
}

// parsePosition reads a 1-based seat, defaulting to the first seat
func parsePosition(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
