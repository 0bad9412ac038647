package models

// FivePlayerLayout selects the seating pattern used at a five-player table
type FivePlayerLayout string

const (
	LayoutThreeVsTwo FivePlayerLayout = "3v2"
	LayoutTwoTwoOne  FivePlayerLayout = "2-2-1"
)

// Valid reports whether l is one of the known layouts
func (l FivePlayerLayout) Valid() bool {
	return l == LayoutThreeVsTwo || l == LayoutTwoTwoOne
}

// GameSettings are the table-wide options
type GameSettings struct {
	PlayerCount      int
	StartingLife     int
	CommanderFormat  bool
	LifeLinkEnabled  bool
	FivePlayerLayout FivePlayerLayout
}

// SettingsPatch carries a partial settings update. Nil fields are left alone.
type SettingsPatch struct {
	PlayerCount      *int
	StartingLife     *int
	CommanderFormat  *bool
	LifeLinkEnabled  *bool
	FivePlayerLayout *FivePlayerLayout
}

// IsEmpty reports whether the patch carries no fields
func (p SettingsPatch) IsEmpty() bool {
	return p.PlayerCount == nil && p.StartingLife == nil && p.CommanderFormat == nil &&
		p.LifeLinkEnabled == nil && p.FivePlayerLayout == nil
}
