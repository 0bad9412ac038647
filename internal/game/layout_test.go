package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/life-total/internal/models"
)

func settingsFor(players int, layout models.FivePlayerLayout) models.GameSettings {
	s := DefaultSettings()
	s.PlayerCount = players
	s.FivePlayerLayout = layout
	return s
}

func TestOrientationFor(t *testing.T) {
	const (
		T = models.OrientationTop
		R = models.OrientationRight
		B = models.OrientationBottom
	)
	tests := []struct {
		name    string
		players int
		layout  models.FivePlayerLayout
		want    []models.Orientation // by position, starting at 1
	}{
		{"two players", 2, "", []models.Orientation{B, T}},
		{"three players", 3, "", []models.Orientation{B, B, T}},
		{"four players", 4, "", []models.Orientation{B, B, T, T}},
		{"five players 3v2", 5, models.LayoutThreeVsTwo, []models.Orientation{B, B, B, T, T}},
		{"five players 2-2-1", 5, models.LayoutTwoTwoOne, []models.Orientation{B, T, T, R, B}},
		{"five players unset layout is 3v2", 5, "", []models.Orientation{B, B, B, T, T}},
		{"unsupported count falls back", 7, "", []models.Orientation{B, B, B, B, B, B, B}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := settingsFor(tt.players, tt.layout)
			for i, want := range tt.want {
				assert.Equal(t, want, OrientationFor(i+1, settings), "position %d", i+1)
			}
		})
	}
}

func TestOrientationForIgnoresLayoutBelowFivePlayers(t *testing.T) {
	a := settingsFor(4, models.LayoutThreeVsTwo)
	b := settingsFor(4, models.LayoutTwoTwoOne)
	for pos := 1; pos <= 4; pos++ {
		assert.Equal(t, OrientationFor(pos, a), OrientationFor(pos, b))
	}
}

func TestOrientationForPositionPastTable(t *testing.T) {
	assert.Equal(t, models.OrientationTop, OrientationFor(9, settingsFor(2, "")))
	assert.Equal(t, models.OrientationBottom, OrientationFor(6, settingsFor(5, models.LayoutTwoTwoOne)))
}

func TestOrientationForPositionBelowFirstSeat(t *testing.T) {
	for _, settings := range []models.GameSettings{
		settingsFor(2, ""),
		settingsFor(3, ""),
		settingsFor(4, ""),
		settingsFor(5, models.LayoutThreeVsTwo),
		settingsFor(5, models.LayoutTwoTwoOne),
	} {
		assert.Equal(t, models.OrientationBottom, OrientationFor(0, settings), "players=%d layout=%s", settings.PlayerCount, settings.FivePlayerLayout)
		assert.Equal(t, models.OrientationBottom, OrientationFor(-3, settings), "players=%d layout=%s", settings.PlayerCount, settings.FivePlayerLayout)
	}
}

func TestGridPlacementForFivePlayers(t *testing.T) {
	threeVsTwo := settingsFor(5, models.LayoutThreeVsTwo)
	assert.Equal(t, []Placement{
		{ColStart: 1, RowStart: 2},
		{ColStart: 2, RowStart: 2},
		{ColStart: 3, RowStart: 2},
		{ColStart: 1, RowStart: 1, ColSpan: 1},
		{ColStart: 3, RowStart: 1, ColSpan: 1},
	}, placementsFor(threeVsTwo, 5))

	twoTwoOne := settingsFor(5, models.LayoutTwoTwoOne)
	assert.Equal(t, []Placement{
		{ColStart: 1, RowStart: 2},
		{ColStart: 1, RowStart: 1},
		{ColStart: 2, RowStart: 1},
		{ColStart: 3, RowStart: 1, RowSpan: 2},
		{ColStart: 2, RowStart: 2},
	}, placementsFor(twoTwoOne, 5))
}

func TestGridPlacementIsKeyedByIndex(t *testing.T) {
	s := settingsFor(5, models.LayoutTwoTwoOne)
	assert.Equal(t, GridPlacementFor(1, 3, s), GridPlacementFor(4, 3, s))
	assert.Equal(t, Placement{}, GridPlacementFor(1, 5, s))
	assert.Equal(t, Placement{}, GridPlacementFor(1, -1, s))
}

func TestGridPlacementForSmallTables(t *testing.T) {
	assert.Equal(t, []Placement{{}, {}, {ColSpan: 2, Wide: true}}, placementsFor(settingsFor(3, ""), 3))
	assert.Equal(t, []Placement{{}, {}, {}, {}}, placementsFor(settingsFor(4, ""), 4))
	assert.Equal(t, []Placement{{}, {}}, placementsFor(settingsFor(2, ""), 2))
}

func TestGridFor(t *testing.T) {
	assert.Equal(t, Grid{Cols: 1, Rows: 2}, GridFor(settingsFor(2, "")))
	assert.Equal(t, Grid{Cols: 2, Rows: 2}, GridFor(settingsFor(3, "")))
	assert.Equal(t, Grid{Cols: 2, Rows: 2}, GridFor(settingsFor(4, "")))
	assert.Equal(t, Grid{Cols: 3, Rows: 2}, GridFor(settingsFor(5, models.LayoutThreeVsTwo)))
	assert.Equal(t, Grid{Cols: 3, Rows: 2}, GridFor(settingsFor(5, models.LayoutTwoTwoOne)))
	assert.Equal(t, fallbackGrid, GridFor(settingsFor(8, "")))
}

func TestLayoutFollowsStateAfterSettingsChange(t *testing.T) {
	s := Apply(newDefaultState(), models.UpdateSettings{Patch: models.SettingsPatch{
		PlayerCount:      intPtr(5),
		FivePlayerLayout: layoutPtr(models.LayoutTwoTwoOne),
	}})
	p4 := s.Players[3]
	assert.Equal(t, models.OrientationRight, OrientationFor(p4.Position, s.Settings))
	assert.Equal(t, 2, GridPlacementFor(p4.Position, 3, s.Settings).RowSpan)
}

func TestPanelLayoutFor(t *testing.T) {
	assert.Equal(t, 0, PanelLayoutFor(models.OrientationBottom).Rotation)
	assert.Equal(t, 180, PanelLayoutFor(models.OrientationTop).Rotation)
	assert.Equal(t, 90, PanelLayoutFor(models.OrientationLeft).Rotation)
	assert.Equal(t, -90, PanelLayoutFor(models.OrientationRight).Rotation)

	top := PanelLayoutFor(models.OrientationTop)
	assert.Equal(t, "column-reverse", top.Direction)
	assert.True(t, top.ButtonsReversed)
	assert.True(t, PanelLayoutFor(models.OrientationRight).ButtonsVertical)
	assert.Equal(t, PanelLayoutFor(models.OrientationBottom), PanelLayoutFor("sideways"))
}

func TestLifeTone(t *testing.T) {
	tests := []struct {
		life       int
		eliminated bool
		want       Tone
	}{
		{40, false, ToneNormal},
		{11, false, ToneNormal},
		{10, false, ToneWarning},
		{6, false, ToneWarning},
		{5, false, ToneCritical},
		{0, false, ToneCritical},
		{40, true, ToneEliminated},
	}
	for _, tt := range tests {
		p := models.Player{Life: tt.life, IsEliminated: tt.eliminated}
		assert.Equal(t, tt.want, LifeTone(p), "life=%d eliminated=%v", tt.life, tt.eliminated)
	}
}

func TestCommanderDamageTotal(t *testing.T) {
	p := models.Player{CommanderDamage: map[string]int{"player-2": 4, "player-3": 7}}
	assert.Equal(t, 11, CommanderDamageTotal(p))
	assert.Zero(t, CommanderDamageTotal(models.Player{}))
}

func placementsFor(s models.GameSettings, n int) []Placement {
	out := make([]Placement, n)
	for i := range out {
		out[i] = GridPlacementFor(i+1, i, s)
	}
	return out
}
