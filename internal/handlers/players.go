package handlers

import (
	"net/http"

	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/models"
	"github.com/aaronzipp/life-total/internal/render"
)

// HandleChangeLife applies a quick life step, mirrored to opponents when the
// player has life link on
func (ctx *Context) HandleChangeLife(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	playerID := r.PathValue("id")

	delta, valid := game.ParseDelta(r.FormValue("delta"))
	state := ctx.dispatch(table, func(s models.GameState) []models.PlayerAction {
		if !valid {
			return nil
		}
		return game.LifeChangeActions(s, playerID, delta)
	})
	writeHTML(w, render.Board(state, render.View{}))
}

// HandleSetLife applies a typed life total. Anything that is not a
// non-negative integer is ignored.
func (ctx *Context) HandleSetLife(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	playerID := r.PathValue("id")

	raw := r.FormValue("life")
	state := ctx.dispatch(table, func(s models.GameState) []models.PlayerAction {
		return game.DirectLifeEditActions(s, playerID, raw)
	})
	writeHTML(w, render.Board(state, render.View{}))
}

// HandleCommanderDamage adjusts the damage a player received from one opponent
func (ctx *Context) HandleCommanderDamage(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	playerID := r.PathValue("id")

	var actions []models.PlayerAction
	if delta, valid := game.ParseDelta(r.FormValue("delta")); valid {
		actions = append(actions, models.ChangeCommanderDamage{
			PlayerID:     playerID,
			FromPlayerID: r.PathValue("from"),
			Amount:       delta,
		})
	}
	writeHTML(w, render.Board(ctx.dispatch(table, just(actions...)), render.View{OpenDamageFor: playerID}))
}

// HandleResetPlayer restores one player
func (ctx *Context) HandleResetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx.playerAction(w, r, func(id string) models.PlayerAction {
		return models.ResetPlayer{PlayerID: id}
	})
}

// HandleEliminatePlayer marks a player as eliminated
func (ctx *Context) HandleEliminatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx.playerAction(w, r, func(id string) models.PlayerAction {
		return models.EliminatePlayer{PlayerID: id}
	})
}

// HandleToggleLifeLink flips a player's life link
func (ctx *Context) HandleToggleLifeLink(w http.ResponseWriter, r *http.Request) {
	ctx.playerAction(w, r, func(id string) models.PlayerAction {
		return models.ToggleLifeLink{PlayerID: id}
	})
}

// HandleRenamePlayer changes a player's display name
func (ctx *Context) HandleRenamePlayer(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	ctx.playerAction(w, r, func(id string) models.PlayerAction {
		return models.RenamePlayer{PlayerID: id, Name: name}
	})
}

// playerAction dispatches a single action built from the {id} path segment
func (ctx *Context) playerAction(w http.ResponseWriter, r *http.Request, build func(id string) models.PlayerAction) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	state := ctx.dispatch(table, just(build(r.PathValue("id"))))
	writeHTML(w, render.Board(state, render.View{}))
}
