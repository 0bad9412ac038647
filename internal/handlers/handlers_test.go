package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/models"
	"github.com/aaronzipp/life-total/internal/store"
)

type staticDefaults models.GameSettings

func (d staticDefaults) TableDefaults() models.GameSettings { return models.GameSettings(d) }

type fixedPicker int

func (f fixedPicker) Intn(n int) int { return int(f) % n }

type testApp struct {
	t       *testing.T
	ctx     *Context
	handler http.Handler
	cookie  *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	tmpl := template.Must(template.New("index.html").Parse(`<html><body>{{.Board}}{{.Settings}}</body></html>`))
	ctx := &Context{
		TableStore: store.NewTableStore(),
		Templates:  tmpl,
		Log:        zap.NewNop(),
		Defaults:   staticDefaults(game.DefaultSettings()),
		Rand:       fixedPicker(1),
		CookieName: "table_id",
	}
	app := &testApp{t: t, ctx: ctx, handler: ctx.Routes(nil)}

	// landing page starts the session
	rec := app.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "table_id" {
			app.cookie = c
		}
	}
	require.NotNil(t, app.cookie, "session cookie not set")
	return app
}

func (a *testApp) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) state() models.GameState {
	table, ok := a.ctx.TableStore.Get(a.cookie.Value)
	require.True(a.t, ok)
	return table.State()
}

func (a *testApp) player(id string) models.Player {
	p, ok := a.state().FindPlayer(id)
	require.True(a.t, ok, "player %s missing", id)
	return p
}

func TestIndexCreatesSessionOnce(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "existing session is reused")
	assert.Equal(t, 1, app.ctx.TableStore.Len())
	assert.Contains(t, rec.Body.String(), `<div id="board"`)
}

func TestUnknownPathIsNotFound(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, http.StatusNotFound, app.do(http.MethodGet, "/nowhere", nil).Code)
}

func TestWrongMethod(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, http.StatusMethodNotAllowed, app.do(http.MethodGet, "/reset", nil).Code)
}

func TestChangeLife(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/players/player-1/life", url.Values{"delta": {"-5"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="35"`)
	assert.Equal(t, 35, app.player("player-1").Life)
	assert.Equal(t, 40, app.player("player-2").Life)
}

func TestChangeLifeBadDeltaIsIgnored(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/players/player-1/life", url.Values{"delta": {"lots"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 40, app.player("player-1").Life)
}

func TestChangeLifeWithLifeLink(t *testing.T) {
	app := newTestApp(t)

	app.do(http.MethodPost, "/players/player-3/lifelink", nil)
	require.True(t, app.player("player-3").LifeLinkActive)

	app.do(http.MethodPost, "/players/player-3/life", url.Values{"delta": {"5"}})
	for _, p := range app.state().Players {
		assert.Equal(t, 45, p.Life, p.ID)
	}
}

func TestSetLife(t *testing.T) {
	app := newTestApp(t)

	app.do(http.MethodPost, "/players/player-2/life/set", url.Values{"life": {"17"}})
	assert.Equal(t, 17, app.player("player-2").Life)

	app.do(http.MethodPost, "/players/player-2/life/set", url.Values{"life": {"-3"}})
	assert.Equal(t, 17, app.player("player-2").Life)

	app.do(http.MethodPost, "/players/player-2/life/set", url.Values{"life": {"NaN"}})
	assert.Equal(t, 17, app.player("player-2").Life)
}

func TestCommanderDamage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/players/player-1/commander/player-2", url.Values{"delta": {"3"}})
	assert.Contains(t, rec.Body.String(), " open>", "damage list stays open after a change")
	assert.Equal(t, 3, app.player("player-1").DamageFrom("player-2"))

	app.do(http.MethodPost, "/players/player-1/commander/player-2", url.Values{"delta": {"-10"}})
	assert.Equal(t, 0, app.player("player-1").DamageFrom("player-2"))
}

func TestEliminateAndResetPlayer(t *testing.T) {
	app := newTestApp(t)

	app.do(http.MethodPost, "/players/player-4/life", url.Values{"delta": {"-5"}})
	app.do(http.MethodPost, "/players/player-4/eliminate", nil)
	assert.True(t, app.player("player-4").IsEliminated)

	app.do(http.MethodPost, "/players/player-4/reset", nil)
	p4 := app.player("player-4")
	assert.False(t, p4.IsEliminated)
	assert.Equal(t, 40, p4.Life)
}

func TestRenamePlayer(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/players/player-1/name", url.Values{"name": {"Kenrith"}})
	assert.Contains(t, rec.Body.String(), `value="Kenrith"`)
	assert.Equal(t, "Kenrith", app.player("player-1").Name)
}

func TestUnknownPlayerIsAbsorbed(t *testing.T) {
	app := newTestApp(t)
	before := app.state()

	rec := app.do(http.MethodPost, "/players/player-9/life", url.Values{"delta": {"-5"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before, app.state())
}

func TestOpenSettingsFacesOpener(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/settings?position=3", nil)
	assert.Contains(t, rec.Body.String(), "settings-top")

	rec = app.do(http.MethodGet, "/settings?position=1", nil)
	assert.Contains(t, rec.Body.String(), "settings-bottom")

	rec = app.do(http.MethodGet, "/settings/close", nil)
	assert.Equal(t, `<div id="settings"></div>`, rec.Body.String())
}

func TestUpdateSettingsPlayerCount(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/settings", url.Values{"playerCount": {"5"}, "position": {"2"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 5, strings.Count(body, `<section class="panel`))
	assert.Contains(t, body, `hx-swap-oob="true"`)

	state := app.state()
	require.Len(t, state.Players, 5)
	assert.Equal(t, "player-5", state.Players[4].ID)

	app.do(http.MethodPost, "/settings", url.Values{"playerCount": {"3"}})
	assert.Len(t, app.state().Players, 3)
}

func TestUpdateSettingsRejectsOutOfRange(t *testing.T) {
	app := newTestApp(t)

	app.do(http.MethodPost, "/settings", url.Values{"playerCount": {"9"}, "startingLife": {"-1"}})
	state := app.state()
	assert.Len(t, state.Players, 4)
	assert.Equal(t, 40, state.Settings.StartingLife)
}

func TestUpdateSettingsStartingLife(t *testing.T) {
	app := newTestApp(t)

	app.do(http.MethodPost, "/players/player-1/life", url.Values{"delta": {"-5"}})
	app.do(http.MethodPost, "/settings", url.Values{"startingLife": {"30"}})
	for _, p := range app.state().Players {
		assert.Equal(t, 30, p.Life, p.ID)
		assert.Equal(t, 30, p.MaxLife, p.ID)
	}
}

func TestUpdateSettingsCustomStartingLife(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/settings", url.Values{"startingLife": {"25"}, "position": {"1"}})
	assert.Contains(t, rec.Body.String(), `name="startingLife" min="1" max="999" value="25"`)
	assert.Equal(t, 25, app.state().Settings.StartingLife)
	assert.Equal(t, 25, app.player("player-3").Life)

	app.do(http.MethodPost, "/settings", url.Values{"startingLife": {"1000"}, "position": {"1"}})
	assert.Equal(t, 25, app.state().Settings.StartingLife)
	assert.Equal(t, 25, app.player("player-3").MaxLife)
}

func TestUpdateSettingsShrinkMovesPanelToFirstSeat(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/settings", url.Values{"playerCount": {"2"}, "position": {"4"}})
	// the opener's seat is gone; the panel faces seat 1 (bottom)
	assert.Contains(t, rec.Body.String(), "settings-bottom")
}

func TestRandomStartingPlayer(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/settings/starting-player", nil)
	assert.Contains(t, rec.Body.String(), "Starting Player")

	starter, ok := app.state().StartingPlayer()
	require.True(t, ok)
	assert.Equal(t, "player-2", starter.ID)
}

func TestResetGame(t *testing.T) {
	app := newTestApp(t)

	app.do(http.MethodPost, "/players/player-1/life", url.Values{"delta": {"-5"}})
	app.do(http.MethodPost, "/settings/starting-player", nil)
	app.do(http.MethodPost, "/players/player-2/eliminate", nil)

	rec := app.do(http.MethodPost, "/reset", nil)
	assert.Contains(t, rec.Body.String(), `<div id="settings" hx-swap-oob="true"></div>`)
	for _, p := range app.state().Players {
		assert.Equal(t, 40, p.Life)
		assert.False(t, p.IsStartingPlayer)
		assert.False(t, p.IsEliminated)
	}
}

func TestEndSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/end-session", nil)
	assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
	assert.Zero(t, app.ctx.TableStore.Len())

	// actions on a discarded session send the client home
	rec = app.do(http.MethodPost, "/players/player-1/life", url.Values{"delta": {"1"}})
	assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","tables":1}`, rec.Body.String())
}

func TestBoardFragment(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/board", nil)
	assert.True(t, strings.HasPrefix(rec.Body.String(), `<div id="board"`))
}

func TestConcurrentSetLifeLandsOnTypedTotal(t *testing.T) {
	app := newTestApp(t)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.do(http.MethodPost, "/players/player-1/life/set", url.Values{"life": {"20"}})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, app.player("player-1").Life)
}

func TestConcurrentLifeLinkSetLifeStaysConsistent(t *testing.T) {
	app := newTestApp(t)
	app.do(http.MethodPost, "/players/player-1/lifelink", nil)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.do(http.MethodPost, "/players/player-1/life/set", url.Values{"life": {"30"}})
		}()
	}
	wg.Wait()

	// only the first edit moves anyone; the rest find player-1 already at 30
	for _, p := range app.state().Players {
		assert.Equal(t, 30, p.Life, p.ID)
	}
}
