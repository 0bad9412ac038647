package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/models"
	"github.com/aaronzipp/life-total/internal/render"
	"github.com/aaronzipp/life-total/internal/store"
)

// DefaultsSource supplies the settings a new table starts with
type DefaultsSource interface {
	TableDefaults() models.GameSettings
}

// Context holds shared application dependencies
type Context struct {
	TableStore   *store.TableStore
	Templates    *template.Template
	Log          *zap.Logger
	Defaults     DefaultsSource
	Rand         game.Picker
	CookieName   string
	SecureCookie bool
}

// HandleIndex serves the table page, starting a session if needed
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	table := ctx.tableOrCreate(w, r)
	state := table.State()

	data := struct {
		Board    template.HTML
		Settings template.HTML
		Players  int
	}{
		Board:    template.HTML(render.Board(state, render.View{})),
		Settings: template.HTML(render.SettingsClosed(false)),
		Players:  len(state.Players),
	}

	if err := ctx.Templates.ExecuteTemplate(w, "index.html", data); err != nil {
		ctx.Log.Error("rendering index", zap.Error(err))
	}
}

// HandleBoard returns the board fragment for the session
func (ctx *Context) HandleBoard(w http.ResponseWriter, r *http.Request) {
	table, ok := ctx.getTable(w, r)
	if !ok {
		return
	}
	writeHTML(w, render.Board(table.State(), render.View{}))
}
