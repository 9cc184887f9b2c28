package verbosity

// State is a resolved verbosity: either Silent or a single Level.
// The zero value is Silent.
type State struct {
	level   Level
	enabled bool
}

// Silent disables all output.
var Silent = State{}

func LevelState(l Level) State {
	return State{level: l, enabled: true}
}

func stateFromRank(rank int) State {
	if rank <= silentRank {
		return Silent
	}
	return LevelState(Level(rank))
}

// Rank returns -1 for Silent and the level rank otherwise.
func (s State) Rank() int {
	if !s.enabled {
		return silentRank
	}
	return s.level.Rank()
}

func (s State) String() string {
	if !s.enabled {
		return "OFF"
	}
	return s.level.String()
}

// Severity returns the minimum severity a sink should let through.
// ok is false when the state is Silent.
func Severity(s State) (level Level, ok bool) {
	return s.level, s.enabled
}

func IsSilent(s State) bool {
	_, ok := Severity(s)
	return !ok
}
