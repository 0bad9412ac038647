package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// HandleEndSession discards the session's table; the next visit starts fresh
func (ctx *Context) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(ctx.CookieName); err == nil {
		ctx.TableStore.Delete(cookie.Value)
		ctx.Log.Info("ended session", zap.String("table", cookie.Value))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ctx.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctx.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("HX-Redirect", "/")
	w.WriteHeader(http.StatusOK)
}

// HandleHealth reports liveness and the number of open tables
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"tables": ctx.TableStore.Len(),
	})
}
