package levelog

// Level is the numeric severity of a log record. Higher values are more
// severe. Values need not be contiguous; callers may compare levels with the
// usual integer operators, so the constants below keep their numeric gaps.
type Level int

// Standard and extended severity levels.
const (
	NotSet    Level = 0
	Traceback Level = 3
	Trace     Level = 5
	Debug     Level = 10
	Info      Level = 20
	Success   Level = 23
	Notice    Level = 26
	CmdCall   Level = 28
	Warning   Level = 30
	Error     Level = 40
	Critical  Level = 50
	Fatal     Level = 60
)

// LevelName pairs a level with its display name.
type LevelName struct {
	Level Level
	Name  string
}

// standardNames are present in every new Registry.
var standardNames = map[Level]string{
	NotSet:   "NOTSET",
	Debug:    "DEBUG",
	Info:     "INFO",
	Warning:  "WARNING",
	Error:    "ERROR",
	Critical: "CRITICAL",
}

// extendedNames are the levels this package adds on top of the standard set.
// They are only named once RegisterLevels has been called on a registry.
var extendedNames = map[Level]string{
	Traceback: "TRACEBACK",
	Trace:     "TRACE",
	Success:   "SUCCESS",
	Notice:    "NOTICE",
	CmdCall:   "CMD-CALL",
	Fatal:     "FATAL",
}

// ExtendedLevelNames returns a copy of the default names for the extra levels
// (TRACEBACK, TRACE, SUCCESS, NOTICE, CMD-CALL and FATAL).
func ExtendedLevelNames() map[Level]string {
	m := make(map[Level]string, len(extendedNames))
	for l, n := range extendedNames {
		m[l] = n
	}
	return m
}

// String returns the name registered for l in the default registry.
func (l Level) String() string {
	return DefaultRegistry().Name(l)
}
