package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/models"
)

// getTable finds the session's table. When there is none the client is sent
// back to the landing page, which starts a fresh session.
func (ctx *Context) getTable(w http.ResponseWriter, r *http.Request) (*models.Table, bool) {
	if cookie, err := r.Cookie(ctx.CookieName); err == nil {
		if table, exists := ctx.TableStore.Get(cookie.Value); exists {
			return table, true
		}
	}
	w.Header().Set("HX-Redirect", "/")
	w.WriteHeader(http.StatusOK)
	return nil, false
}

// tableOrCreate finds the session's table or starts a new one with the
// configured defaults
func (ctx *Context) tableOrCreate(w http.ResponseWriter, r *http.Request) *models.Table {
	if cookie, err := r.Cookie(ctx.CookieName); err == nil {
		if table, exists := ctx.TableStore.Get(cookie.Value); exists {
			return table
		}
	}

	table := ctx.TableStore.Create(game.NewState(ctx.Defaults.TableDefaults()))
	ctx.Log.Info("created table",
		zap.String("table", table.ID),
		zap.Int("players", len(table.State().Players)),
	)

	// Set cookie for table ID (session)
	http.SetCookie(w, &http.Cookie{
		Name:     ctx.CookieName,
		Value:    table.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   ctx.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return table
}

// dispatch builds actions from the table's current snapshot and applies them
// in one update. build runs under the table's write lock so actions derived
// from the state never see a stale snapshot.
func (ctx *Context) dispatch(table *models.Table, build func(models.GameState) []models.PlayerAction) models.GameState {
	var actions []models.PlayerAction
	state := table.Update(func(s models.GameState) models.GameState {
		actions = build(s)
		return game.ApplyAll(s, actions...)
	})

	if len(actions) == 0 {
		return state
	}
	if ce := ctx.Log.Check(zap.DebugLevel, "dispatched"); ce != nil {
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = models.ActionName(a)
		}
		ce.Write(zap.String("table", table.ID), zap.Strings("actions", names))
	}
	return state
}

// just wraps actions that do not depend on the current state
func just(actions ...models.PlayerAction) func(models.GameState) []models.PlayerAction {
	return func(models.GameState) []models.PlayerAction {
		return actions
	}
}

// writeHTML writes an HTML fragment
func writeHTML(w http.ResponseWriter, fragments ...string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, f := range fragments {
		io.WriteString(w, f)
	}
}
