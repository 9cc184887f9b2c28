// Package verbosity turns a baseline log level and counts of -v/-q occurrences
// into a single log level, or into silence.
//
// Ranks run from -1 (silent) through Error=0 up to Trace=4. Every -v raises the
// rank by one and every -q lowers it by one; the result is clamped to [-1, 4].
package verbosity

// Config is the baseline chosen by the embedding application.
// A Config without a default level starts out silent.
type Config struct {
	defaultLevel Level
	hasDefault   bool
}

func NewConfig(l Level) Config {
	return Config{defaultLevel: l, hasDefault: true}
}

func SilentConfig() Config {
	return Config{}
}

// ErrorDefault reports errors only until -v is given.
func ErrorDefault() Config { return NewConfig(Error) }

func WarnDefault() Config { return NewConfig(Warn) }

func InfoDefault() Config { return NewConfig(Info) }

func (c Config) DefaultLevel() (Level, bool) {
	return c.defaultLevel, c.hasDefault
}

func (c Config) baseline() int {
	if !c.hasDefault {
		return silentRank
	}
	return c.defaultLevel.Rank()
}

func (c Config) String() string {
	if !c.hasDefault {
		return "OFF"
	}
	return c.defaultLevel.String()
}

// span is the distance from silence to the most detailed level. Any
// adjustment at least this large saturates at one of the ends.
const span = uint(maxRank - silentRank)

// Rank resolves the counts against the baseline and returns the clamped rank.
// Counts are compared without conversion so arbitrarily large values saturate
// instead of wrapping.
func Rank(cfg Config, verbose, quiet uint) int {
	rank := cfg.baseline()
	if verbose >= quiet {
		up := verbose - quiet
		if up >= span {
			return maxRank
		}
		rank += int(up)
	} else {
		down := quiet - verbose
		if down >= span {
			return silentRank
		}
		rank -= int(down)
	}

	switch {
	case rank < silentRank:
		return silentRank
	case rank > maxRank:
		return maxRank
	}
	return rank
}

// Resolve is a pure function of its inputs and is safe for concurrent use.
func Resolve(cfg Config, verbose, quiet uint) State {
	return stateFromRank(Rank(cfg, verbose, quiet))
}
