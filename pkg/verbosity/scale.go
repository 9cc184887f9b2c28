package verbosity

// Scale maps levels onto the filter type of a particular logging backend.
// Implementations must preserve order: a more detailed Level never maps to a
// stricter filter than a less detailed one.
type Scale[L any] interface {
	Level(Level) L
	Off() L
}

func Filter[L any](s State, sc Scale[L]) L {
	l, ok := Severity(s)
	if !ok {
		return sc.Off()
	}
	return sc.Level(l)
}
