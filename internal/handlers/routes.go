package handlers

import (
	"io/fs"
	"net/http"
)

// Routes registers every endpoint and wraps them with logging and recovery
func (ctx *Context) Routes(static fs.FS) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", ctx.HandleIndex)
	mux.HandleFunc("GET /board", ctx.HandleBoard)
	mux.HandleFunc("GET /healthz", ctx.HandleHealth)

	// Player actions
	mux.HandleFunc("POST /players/{id}/life", ctx.HandleChangeLife)
	mux.HandleFunc("POST /players/{id}/life/set", ctx.HandleSetLife)
	mux.HandleFunc("POST /players/{id}/commander/{from}", ctx.HandleCommanderDamage)
	mux.HandleFunc("POST /players/{id}/reset", ctx.HandleResetPlayer)
	mux.HandleFunc("POST /players/{id}/eliminate", ctx.HandleEliminatePlayer)
	mux.HandleFunc("POST /players/{id}/lifelink", ctx.HandleToggleLifeLink)
	mux.HandleFunc("POST /players/{id}/name", ctx.HandleRenamePlayer)

	// Settings and table-wide commands
	mux.HandleFunc("GET /settings", ctx.HandleOpenSettings)
	mux.HandleFunc("GET /settings/close", ctx.HandleCloseSettings)
	mux.HandleFunc("POST /settings", ctx.HandleUpdateSettings)
	mux.HandleFunc("POST /settings/starting-player", ctx.HandleRandomStartingPlayer)
	mux.HandleFunc("POST /reset", ctx.HandleResetGame)
	mux.HandleFunc("POST /end-session", ctx.HandleEndSession)

	// Static files
	if static != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	}

	return Recover(ctx.Log, Logging(ctx.Log, mux))
}
