package models

// Orientation is the table edge a player panel faces
type Orientation string

const (
	OrientationTop    Orientation = "top"
	OrientationRight  Orientation = "right"
	OrientationBottom Orientation = "bottom"
	OrientationLeft   Orientation = "left"
)
