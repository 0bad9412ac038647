package game

const (
	// MinPlayers is the smallest supported table
	MinPlayers = 2

	// MaxPlayers is the largest supported table
	MaxPlayers = 5

	// DefaultPlayerCount is used when no configuration overrides it
	DefaultPlayerCount = 4

	// DefaultStartingLife is the Commander starting life total
	DefaultStartingLife = 40

	// MaxStartingLife bounds the starting life accepted from the settings panel
	MaxStartingLife = 999

	// CriticalLife and WarningLife are the thresholds for the life display tone
	CriticalLife = 5
	WarningLife  = 10

	// MaxNameLength caps player display names
	MaxNameLength = 24
)

// LifeSteps are the quick buttons shown on every panel
var LifeSteps = []int{-5, -1, 1, 5}

// StartingLifeChoices are offered by the settings panel
var StartingLifeChoices = []int{20, 30, 40}

// PlayerCountChoices are offered by the settings panel
var PlayerCountChoices = []int{2, 3, 4, 5}
