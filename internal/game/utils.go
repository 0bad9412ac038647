package game

import "math/rand/v2"

// globalPicker draws from the process-wide, concurrency-safe generator
type globalPicker struct{}

func (globalPicker) Intn(n int) int { return rand.IntN(n) }

// DefaultPicker is the random source used outside tests
var DefaultPicker Picker = globalPicker{}
