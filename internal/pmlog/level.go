package pmlog

// Level is a message severity. The scale is "none" plus the 8 standard
// syslog severities; lower numbers are more severe. A context whose
// enabled level is LevelNone emits nothing.
type Level int

const (
	// LevelNone disables all output for a context.
	LevelNone Level = iota - 1
	// LevelEmerg is the highest severity.
	LevelEmerg
	// LevelAlert indicates action must be taken immediately.
	LevelAlert
	// LevelCrit indicates critical conditions.
	LevelCrit
	// LevelErr indicates error conditions.
	LevelErr
	// LevelWarning indicates warning conditions.
	LevelWarning
	// LevelNotice indicates normal but significant conditions.
	LevelNotice
	// LevelInfo indicates informational messages.
	LevelInfo
	// LevelDebug is the lowest severity.
	LevelDebug
)

// MinLevel and MaxLevel bound the recognized scale, inclusive.
const (
	MinLevel = LevelNone
	MaxLevel = LevelDebug
)

// levelNames is indexed by level+1 so LevelNone lands at index 0.
var levelNames = [...]string{
	"none",
	"emerg",
	"alert",
	"crit",
	"err",
	"warning",
	"notice",
	"info",
	"debug",
}

// ParseLevel matches s against the canonical severity names.
// The boolean result is false for unrecognized input.
func ParseLevel(s string) (Level, bool) {
	for i, name := range levelNames {
		if s == name {
			return Level(i) + MinLevel, true
		}
	}
	return 0, false
}

// Valid reports whether l is on the recognized scale.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// String returns the canonical name of the level, or "Unknown" for
// values outside the recognized scale. The fallback makes String safe
// for display paths that render whatever the subsystem reports.
func (l Level) String() string {
	if !l.Valid() {
		return "Unknown"
	}
	return levelNames[l-MinLevel]
}
