package game

import (
	"github.com/aaronzipp/life-total/internal/models"
)

// Grid is the board's column and row count
type Grid struct {
	Cols int
	Rows int
}

// Placement tells the renderer where a panel sits in the grid. Zero starts
// mean the panel flows into the next free cell; zero spans mean one cell.
type Placement struct {
	ColStart int
	RowStart int
	ColSpan  int
	RowSpan  int
	Wide     bool // the lone third-seat panel stretched across the top row
}

// seating is one row of the layout table
type seating struct {
	grid Grid
	// facing[i] is the orientation of position i+1; positions past the end use rest
	facing []models.Orientation
	rest   models.Orientation
	// placements are keyed by the player's index in the sequence
	placements []Placement
}

type seatingKey struct {
	players int
	layout  models.FivePlayerLayout
}

const (
	top    = models.OrientationTop
	right  = models.OrientationRight
	bottom = models.OrientationBottom
)

var seatings = map[seatingKey]seating{
	{players: 2}: {
		grid:   Grid{Cols: 1, Rows: 2},
		facing: []models.Orientation{bottom},
		rest:   top,
	},
	{players: 3}: {
		grid:       Grid{Cols: 2, Rows: 2},
		facing:     []models.Orientation{bottom, bottom},
		rest:       top,
		placements: []Placement{{}, {}, {ColSpan: 2, Wide: true}},
	},
	{players: 4}: {
		grid:   Grid{Cols: 2, Rows: 2},
		facing: []models.Orientation{bottom, bottom},
		rest:   top,
	},
	{players: 5, layout: models.LayoutThreeVsTwo}: {
		grid:   Grid{Cols: 3, Rows: 2},
		facing: []models.Orientation{bottom, bottom, bottom},
		rest:   top,
		placements: []Placement{
			{ColStart: 1, RowStart: 2},
			{ColStart: 2, RowStart: 2},
			{ColStart: 3, RowStart: 2},
			{ColStart: 1, RowStart: 1, ColSpan: 1},
			{ColStart: 3, RowStart: 1, ColSpan: 1},
		},
	},
	{players: 5, layout: models.LayoutTwoTwoOne}: {
		grid:   Grid{Cols: 3, Rows: 2},
		facing: []models.Orientation{bottom, top, top, right, bottom},
		rest:   bottom,
		placements: []Placement{
			{ColStart: 1, RowStart: 2},
			{ColStart: 1, RowStart: 1},
			{ColStart: 2, RowStart: 1},
			{ColStart: 3, RowStart: 1, RowSpan: 2},
			{ColStart: 2, RowStart: 2},
		},
	},
}

// fallbackGrid is used for player counts the table does not know
var fallbackGrid = Grid{Cols: 2, Rows: 2}

// lookupSeating finds the layout row for the settings. The five-player
// variant defaults to 3v2 for anything other than 2-2-1.
func lookupSeating(settings models.GameSettings) (seating, bool) {
	key := seatingKey{players: settings.PlayerCount}
	if settings.PlayerCount == 5 {
		key.layout = models.LayoutThreeVsTwo
		if settings.FivePlayerLayout == models.LayoutTwoTwoOne {
			key.layout = models.LayoutTwoTwoOne
		}
	}
	s, ok := seatings[key]
	return s, ok
}

// OrientationFor returns the table edge the panel at position faces.
// Positions are 1-based; anything below 1 is treated as the first seat.
func OrientationFor(position int, settings models.GameSettings) models.Orientation {
	s, ok := lookupSeating(settings)
	if !ok {
		return bottom
	}
	if position < 1 {
		position = 1
	}
	if position <= len(s.facing) {
		return s.facing[position-1]
	}
	return s.rest
}

// GridPlacementFor returns the grid hints for the panel at index (0-based
// order in the player sequence). Placement depends on index, not position.
func GridPlacementFor(position, index int, settings models.GameSettings) Placement {
	s, ok := lookupSeating(settings)
	if !ok || index < 0 || index >= len(s.placements) {
		return Placement{}
	}
	return s.placements[index]
}

// GridFor returns the board grid for the settings
func GridFor(settings models.GameSettings) Grid {
	s, ok := lookupSeating(settings)
	if !ok {
		return fallbackGrid
	}
	return s.grid
}

// PanelLayout describes how a panel's contents are arranged so they read
// upright for the player sitting on that edge
type PanelLayout struct {
	Rotation        int    // degrees applied to text and controls
	Direction       string // flex direction of the panel body
	NameOrder       int
	LifeOrder       int
	ButtonsOrder    int
	DamageOrder     int
	ButtonsVertical bool
	ButtonsReversed bool
}

// PanelLayoutFor returns the arrangement for an orientation
func PanelLayoutFor(o models.Orientation) PanelLayout {
	switch o {
	case models.OrientationLeft:
		return PanelLayout{Rotation: 90, Direction: "row", NameOrder: 1, LifeOrder: 2, ButtonsOrder: 3, DamageOrder: 4, ButtonsVertical: true}
	case models.OrientationRight:
		return PanelLayout{Rotation: -90, Direction: "row-reverse", NameOrder: 1, LifeOrder: 2, ButtonsOrder: 3, DamageOrder: 4, ButtonsVertical: true}
	case models.OrientationTop:
		return PanelLayout{Rotation: 180, Direction: "column-reverse", NameOrder: 4, LifeOrder: 2, ButtonsOrder: 1, DamageOrder: 2, ButtonsReversed: true}
	default:
		return PanelLayout{Rotation: 0, Direction: "column", NameOrder: 1, LifeOrder: 2, ButtonsOrder: 3, DamageOrder: 4}
	}
}
