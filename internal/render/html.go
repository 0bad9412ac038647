package render

import (
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/models"
)

// View carries per-response presentation state that is not part of the game
type View struct {
	// OpenDamageFor keeps this player's commander damage list expanded
	OpenDamageFor string
}

// Board generates HTML for the whole table
func Board(state models.GameState, view View) string {
	grid := game.GridFor(state.Settings)

	var b strings.Builder
	b.WriteString(`<div id="board" class="board" style="grid-template-columns: repeat(`)
	b.WriteString(strconv.Itoa(grid.Cols))
	b.WriteString(`, 1fr); grid-template-rows: repeat(`)
	b.WriteString(strconv.Itoa(grid.Rows))
	b.WriteString(`, 1fr);">`)
	for i, p := range state.Players {
		b.WriteString(PlayerPanel(state, p, i, view))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// PlayerPanel generates HTML for one player's panel
func PlayerPanel(state models.GameState, p models.Player, index int, view View) string {
	orientation := game.OrientationFor(p.Position, state.Settings)
	layout := game.PanelLayoutFor(orientation)
	placement := game.GridPlacementFor(p.Position, index, state.Settings)
	id := htmlpkg.EscapeString(p.ID)
	rot := rotationClass(layout.Rotation)

	var b strings.Builder
	b.WriteString(`<section class="panel`)
	if p.IsStartingPlayer {
		b.WriteString(` starting`)
	}
	if p.IsEliminated {
		b.WriteString(` eliminated`)
	}
	b.WriteString(`" data-orientation="`)
	b.WriteString(string(orientation))
	b.WriteString(`" aria-label="`)
	b.WriteString(htmlpkg.EscapeString(p.Name))
	b.WriteString(`"`)
	if style := placementStyle(placement); style != "" {
		b.WriteString(` style="`)
		b.WriteString(style)
		b.WriteString(`"`)
	}
	b.WriteString(`>`)

	// settings button opens the panel facing this seat
	b.WriteString(`<button class="settings-btn settings-btn-`)
	b.WriteString(string(orientation))
	b.WriteString(`" hx-get="/settings?position=`)
	b.WriteString(strconv.Itoa(p.Position))
	b.WriteString(`" hx-target="#settings" hx-swap="outerHTML" aria-label="Settings">⚙</button>`)

	b.WriteString(`<div class="panel-body" style="flex-direction: `)
	b.WriteString(layout.Direction)
	b.WriteString(`;">`)

	// name and starting marker
	b.WriteString(`<div class="panel-name `)
	b.WriteString(rot)
	b.WriteString(`" style="order: `)
	b.WriteString(strconv.Itoa(layout.NameOrder))
	b.WriteString(`;"><input class="name-input" name="name" value="`)
	b.WriteString(htmlpkg.EscapeString(p.Name))
	b.WriteString(`" maxlength="`)
	b.WriteString(strconv.Itoa(game.MaxNameLength))
	b.WriteString(`" hx-post="/players/`)
	b.WriteString(id)
	b.WriteString(`/name" hx-trigger="change" hx-target="#board" hx-swap="outerHTML">`)
	if p.IsStartingPlayer {
		b.WriteString(`<div class="starting-label">Starting Player</div>`)
	}
	if p.IsEliminated {
		b.WriteString(`<div class="eliminated-label">Eliminated</div>`)
	}
	b.WriteString(`</div>`)

	// life total, editable in place
	b.WriteString(`<div class="panel-life" style="order: `)
	b.WriteString(strconv.Itoa(layout.LifeOrder))
	b.WriteString(`;"><input type="number" min="0" name="life" class="life-input tone-`)
	b.WriteString(string(game.LifeTone(p)))
	b.WriteString(` `)
	b.WriteString(rot)
	b.WriteString(`" value="`)
	b.WriteString(strconv.Itoa(p.Life))
	b.WriteString(`" hx-post="/players/`)
	b.WriteString(id)
	b.WriteString(`/life/set" hx-trigger="change" hx-target="#board" hx-swap="outerHTML" aria-label="Life total"></div>`)

	// quick buttons
	b.WriteString(`<div class="life-buttons`)
	if layout.ButtonsVertical {
		b.WriteString(` vertical`)
	}
	if layout.ButtonsReversed {
		b.WriteString(` reversed`)
	}
	b.WriteString(`" style="order: `)
	b.WriteString(strconv.Itoa(layout.ButtonsOrder))
	b.WriteString(`;">`)
	for _, step := range game.LifeSteps {
		b.WriteString(`<button class="life-btn `)
		if step < 0 {
			b.WriteString(`minus`)
		} else {
			b.WriteString(`plus`)
		}
		b.WriteString(`" hx-post="/players/`)
		b.WriteString(id)
		b.WriteString(`/life" hx-vals='{"delta": "`)
		b.WriteString(strconv.Itoa(step))
		b.WriteString(`"}' hx-target="#board" hx-swap="outerHTML">`)
		b.WriteString(signed(step))
		b.WriteString(`</button>`)
	}
	b.WriteString(`</div>`)

	if state.Settings.CommanderFormat {
		b.WriteString(commanderDamage(state, p, layout, rot, view.OpenDamageFor == p.ID))
	}

	b.WriteString(playerControls(state, p, id))

	b.WriteString(`</div></section>`)
	return b.String()
}

// commanderDamage generates the collapsible per-opponent damage list
func commanderDamage(state models.GameState, p models.Player, layout game.PanelLayout, rot string, open bool) string {
	id := htmlpkg.EscapeString(p.ID)

	var b strings.Builder
	b.WriteString(`<details class="commander-damage" style="order: `)
	b.WriteString(strconv.Itoa(layout.DamageOrder))
	b.WriteString(`;"`)
	if open {
		b.WriteString(` open`)
	}
	b.WriteString(`><summary class="`)
	b.WriteString(rot)
	b.WriteString(`">Commander Damage: `)
	b.WriteString(strconv.Itoa(game.CommanderDamageTotal(p)))
	b.WriteString(`</summary><ul class="damage-list `)
	b.WriteString(rot)
	b.WriteString(`">`)
	for _, opp := range state.Opponents(p.ID) {
		oppID := htmlpkg.EscapeString(opp.ID)
		b.WriteString(`<li class="damage-row"><span>`)
		b.WriteString(htmlpkg.EscapeString(opp.Name))
		b.WriteString(`:</span>`)
		for _, step := range []int{-1, 1} {
			if step > 0 {
				b.WriteString(`<span class="damage-value">`)
				b.WriteString(strconv.Itoa(p.DamageFrom(opp.ID)))
				b.WriteString(`</span>`)
			}
			b.WriteString(`<button class="damage-btn" hx-post="/players/`)
			b.WriteString(id)
			b.WriteString(`/commander/`)
			b.WriteString(oppID)
			b.WriteString(`" hx-vals='{"delta": "`)
			b.WriteString(strconv.Itoa(step))
			b.WriteString(`"}' hx-target="#board" hx-swap="outerHTML">`)
			if step < 0 {
				b.WriteString(`-`)
			} else {
				b.WriteString(`+`)
			}
			b.WriteString(`</button>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></details>`)
	return b.String()
}

// playerControls generates the per-player reset / eliminate / life link buttons
func playerControls(state models.GameState, p models.Player, id string) string {
	var b strings.Builder
	b.WriteString(`<div class="player-controls">`)
	b.WriteString(`<button class="btn-small" hx-post="/players/`)
	b.WriteString(id)
	b.WriteString(`/reset" hx-target="#board" hx-swap="outerHTML">Reset</button>`)
	if !p.IsEliminated {
		b.WriteString(`<button class="btn-small" hx-post="/players/`)
		b.WriteString(id)
		b.WriteString(`/eliminate" hx-target="#board" hx-swap="outerHTML">Eliminate</button>`)
	}
	if state.Settings.LifeLinkEnabled {
		b.WriteString(`<button class="btn-small`)
		if p.LifeLinkActive {
			b.WriteString(` active`)
		}
		b.WriteString(`" hx-post="/players/`)
		b.WriteString(id)
		b.WriteString(`/lifelink" hx-target="#board" hx-swap="outerHTML" aria-pressed="`)
		b.WriteString(strconv.FormatBool(p.LifeLinkActive))
		b.WriteString(`">Life Link</button>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// SettingsPanel generates the settings panel, placed along the edge the
// opening player faces
func SettingsPanel(settings models.GameSettings, orientation models.Orientation, position int, oob bool) string {
	pos := strconv.Itoa(position)

	var b strings.Builder
	b.WriteString(`<div id="settings" class="settings-modal settings-`)
	b.WriteString(string(orientation))
	b.WriteString(`"`)
	if oob {
		b.WriteString(` hx-swap-oob="true"`)
	}
	b.WriteString(`><div class="settings-header"><h2>Game Settings</h2>`)
	b.WriteString(`<button hx-get="/settings/close" hx-target="#settings" hx-swap="outerHTML" aria-label="Close">×</button></div>`)

	b.WriteString(`<div class="settings-group"><label>Number of Players</label><div class="choice-row">`)
	for _, n := range game.PlayerCountChoices {
		b.WriteString(choiceButton("playerCount", strconv.Itoa(n), strconv.Itoa(n), pos, settings.PlayerCount == n))
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="settings-group"><label>Starting Life</label><div class="choice-row">`)
	for _, life := range game.StartingLifeChoices {
		b.WriteString(choiceButton("startingLife", strconv.Itoa(life), strconv.Itoa(life), pos, settings.StartingLife == life))
	}
	b.WriteString(`</div>`)
	b.WriteString(`<input type="number" class="custom-life" name="startingLife" min="1" max="`)
	b.WriteString(strconv.Itoa(game.MaxStartingLife))
	b.WriteString(`" value="`)
	b.WriteString(strconv.Itoa(settings.StartingLife))
	b.WriteString(`" aria-label="Custom starting life" hx-post="/settings" hx-trigger="change" hx-vals='{"position": "`)
	b.WriteString(pos)
	b.WriteString(`"}' hx-target="#board" hx-swap="outerHTML">`)
	b.WriteString(`</div>`)

	if settings.PlayerCount == 5 {
		b.WriteString(`<div class="settings-group"><label>Five Player Layout</label><div class="choice-row">`)
		for _, l := range []models.FivePlayerLayout{models.LayoutThreeVsTwo, models.LayoutTwoTwoOne} {
			selected := settings.FivePlayerLayout == l || (l == models.LayoutThreeVsTwo && !settings.FivePlayerLayout.Valid())
			b.WriteString(choiceButton("fivePlayerLayout", string(l), string(l), pos, selected))
		}
		b.WriteString(`</div></div>`)
	}

	b.WriteString(`<div class="settings-group">`)
	b.WriteString(toggleButton("commanderFormat", "Commander Format", pos, settings.CommanderFormat))
	b.WriteString(toggleButton("lifeLinkEnabled", "Life Link", pos, settings.LifeLinkEnabled))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="button-stack">`)
	b.WriteString(`<button class="btn btn-primary" hx-post="/settings/starting-player" hx-target="#board" hx-swap="outerHTML">Random Starting Player</button>`)
	b.WriteString(`<button class="btn btn-secondary" hx-post="/reset" hx-target="#board" hx-swap="outerHTML" hx-confirm="Reset every player?">Reset Game</button>`)
	b.WriteString(`<button class="btn btn-secondary" hx-post="/end-session" hx-swap="none">New Session</button>`)
	b.WriteString(`</div></div>`)
	return b.String()
}

// SettingsClosed is the empty settings placeholder
func SettingsClosed(oob bool) string {
	if oob {
		return `<div id="settings" hx-swap-oob="true"></div>`
	}
	return `<div id="settings"></div>`
}

func choiceButton(field, value, label, position string, selected bool) string {
	var b strings.Builder
	b.WriteString(`<button class="choice`)
	if selected {
		b.WriteString(` selected`)
	}
	b.WriteString(`" hx-post="/settings" hx-vals='{"`)
	b.WriteString(field)
	b.WriteString(`": "`)
	b.WriteString(htmlpkg.EscapeString(value))
	b.WriteString(`", "position": "`)
	b.WriteString(position)
	b.WriteString(`"}' hx-target="#board" hx-swap="outerHTML">`)
	b.WriteString(htmlpkg.EscapeString(label))
	b.WriteString(`</button>`)
	return b.String()
}

func toggleButton(field, label, position string, on bool) string {
	var b strings.Builder
	b.WriteString(`<button class="toggle`)
	if on {
		b.WriteString(` on`)
	}
	b.WriteString(`" hx-post="/settings" hx-vals='{"`)
	b.WriteString(field)
	b.WriteString(`": "`)
	b.WriteString(strconv.FormatBool(!on))
	b.WriteString(`", "position": "`)
	b.WriteString(position)
	b.WriteString(`"}' hx-target="#board" hx-swap="outerHTML" aria-pressed="`)
	b.WriteString(strconv.FormatBool(on))
	b.WriteString(`">`)
	b.WriteString(label)
	b.WriteString(`</button>`)
	return b.String()
}

func placementStyle(p game.Placement) string {
	var parts []string
	if p.ColStart > 0 || p.ColSpan > 0 {
		parts = append(parts, "grid-column: "+gridLine(p.ColStart, p.ColSpan))
	}
	if p.RowStart > 0 || p.RowSpan > 0 {
		parts = append(parts, "grid-row: "+gridLine(p.RowStart, p.RowSpan))
	}
	return strings.Join(parts, "; ")
}

func gridLine(start, span int) string {
	if span == 0 {
		span = 1
	}
	s := "span " + strconv.Itoa(span)
	if start > 0 {
		s = strconv.Itoa(start) + " / " + s
	}
	return s
}

func rotationClass(deg int) string {
	switch deg {
	case 90:
		return "rot-90"
	case -90:
		return "rot-270"
	case 180:
		return "rot-180"
	default:
		return "rot-0"
	}
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
