package game

import "github.com/aaronzipp/life-total/internal/models"

// Tone is the color class of a life total
type Tone string

const (
	ToneNormal     Tone = "normal"
	ToneWarning    Tone = "warning"
	ToneCritical   Tone = "critical"
	ToneEliminated Tone = "eliminated"
)

// LifeTone picks how alarming a player's life total should look
func LifeTone(p models.Player) Tone {
	switch {
	case p.IsEliminated:
		return ToneEliminated
	case p.Life <= CriticalLife:
		return ToneCritical
	case p.Life <= WarningLife:
		return ToneWarning
	default:
		return ToneNormal
	}
}

// CommanderDamageTotal sums the commander damage a player has received
func CommanderDamageTotal(p models.Player) int {
	total := 0
	for _, d := range p.CommanderDamage {
		total += d
	}
	return total
}
