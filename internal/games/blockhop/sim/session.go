package sim

// Phase is the coarse state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseTransition // level complete, waiting for Advance
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseTransition:
		return "transition"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Session holds progression and counters. Fields are level-scoped unless
// noted; level-scoped values reset on every level load.
type Session struct {
	Running             bool
	Won                 bool
	LevelComplete       bool
	ShowLevelTransition bool
	Paused              bool
	CurrentLevel        int

	Coins           int
	BlocksRemaining int
	BlocksUsed      int
	StarsThisLevel  int

	// Carried across levels.
	MaxBlocks   int
	TotalStars  int
	CoinsBanked int
	Deaths      int
	Frames      int
}

func newSession(startBlocks int) Session {
	return Session{
		MaxBlocks:       startBlocks,
		BlocksRemaining: startBlocks,
	}
}

// Phase derives the coarse state from the flags.
func (s Session) Phase() Phase {
	switch {
	case s.Won:
		return PhaseWon
	case s.ShowLevelTransition:
		return PhaseTransition
	case s.Paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Score rates the run: banked and current coins, stars, cleared levels.
func (s Session) Score() int {
	coins := s.CoinsBanked
	cleared := s.CurrentLevel - 1
	if s.LevelComplete {
		cleared++
	} else {
		coins += s.Coins
	}
	return coins*10 + s.TotalStars*50 + cleared*100
}
