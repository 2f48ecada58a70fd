package core

// EventKind identifies something that happened during a simulation tick.
type EventKind int

const (
	EventShot           EventKind = iota // a volley was fired
	EventKill                            // an enemy was destroyed; Value = points awarded
	EventPickup                          // a power-up was collected; Label = kind
	EventPowerUpExpired                  // a timed power-up ran out; Label = kind
	EventDeath                           // the player was hit; Value = score lost
	EventLevelStart                      // a new wave spawned
	EventPause                           // pause toggled; Value = 1 when paused
)

var eventNames = map[EventKind]string{
	EventShot:           "shot",
	EventKill:           "kill",
	EventPickup:         "pickup",
	EventPowerUpExpired: "powerup_expired",
	EventDeath:          "death",
	EventLevelStart:     "level_start",
	EventPause:          "pause",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single notification emitted by Step.
type Event struct {
	Kind  EventKind
	Value int
	Level int    // Level at the time of the event
	Label string // Optional detail, e.g. the power-up kind
}
