package candle

import "fmt"

// Resolution declares the unit of the integer timestamps carried by
// incoming trades. It is used only by time-based rules to normalize
// timestamps to nanoseconds.
type Resolution int

const (
	// Second resolution, e.g. unix epoch seconds.
	Second Resolution = iota
	// Millisecond resolution.
	Millisecond
	// Microsecond resolution.
	Microsecond
	// Nanosecond resolution.
	Nanosecond
)

var resolutionNames = map[Resolution]string{
	Second:      "s",
	Millisecond: "ms",
	Microsecond: "us",
	Nanosecond:  "ns",
}

// String returns the short unit name of the resolution.
func (r Resolution) String() string {
	name, ok := resolutionNames[r]
	if !ok {
		return "unknown"
	}
	return name
}

// Nanos converts a timestamp expressed in this resolution to nanoseconds.
func (r Resolution) Nanos(ts int64) int64 {
	switch r {
	case Second:
		return ts * 1_000_000_000
	case Millisecond:
		return ts * 1_000_000
	case Microsecond:
		return ts * 1_000
	default:
		return ts
	}
}

// ParseResolution returns the resolution for a short unit name.
func ParseResolution(name string) (Resolution, error) {
	for res, n := range resolutionNames {
		if n == name {
			return res, nil
		}
	}
	return Second, fmt.Errorf("unsupported timestamp resolution: %s", name)
}
