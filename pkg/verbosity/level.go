package verbosity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLevel = errors.New("unknown log level")

// Level is a log severity ordered from the least to the most detailed.
// The numeric value of a Level is its rank.
type Level int8

const (
	Error Level = iota
	Warn
	Info
	Debug
	Trace
)

const (
	silentRank = -1
	minRank    = int(Error)
	maxRank    = int(Trace)
)

var levelNames = [...]string{
	Error: "ERROR",
	Warn:  "WARN",
	Info:  "INFO",
	Debug: "DEBUG",
	Trace: "TRACE",
}

// Levels returns every level in rank order.
func Levels() []Level {
	return []Level{Error, Warn, Info, Debug, Trace}
}

func (l Level) Rank() int {
	return int(l)
}

func (l Level) Valid() bool {
	return int(l) >= minRank && int(l) <= maxRank
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int8(l))
	}
	return levelNames[l]
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel accepts level names case-insensitively. "warning" is an alias for Warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warn, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "trace":
		return Trace, nil
	}
	return Error, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
