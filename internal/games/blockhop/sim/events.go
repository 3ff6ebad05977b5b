package sim

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventJump EventKind = iota
	EventCoinPickup
	EventStarPickup
	EventDeath
	EventEnemyStomp
	EventBlockPlaced
	EventBlockDenied
	EventLevelComplete
	EventGameWon
)

var eventNames = [...]string{
	EventJump:          "jump",
	EventCoinPickup:    "coin-pickup",
	EventStarPickup:    "star-pickup",
	EventDeath:         "death",
	EventEnemyStomp:    "enemy-stomp",
	EventBlockPlaced:   "block-placed",
	EventBlockDenied:   "block-denied",
	EventLevelComplete: "level-complete",
	EventGameWon:       "game-won",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Death causes carried in Event.Cause.
const (
	CauseSpike = "spike"
	CauseEnemy = "enemy"
	CauseFall  = "fall"
)

// Event is emitted by Step. At is the rectangle involved: the player for
// jumps and deaths, the item or block otherwise.
type Event struct {
	Kind  EventKind
	Frame int
	At    Rect
	Cause string // deaths only
}
