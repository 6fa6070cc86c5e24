package levelog

//go:generate mockgen -self_package github.com/spaceweasel/levelog -package levelog -destination protocol_mock.go github.com/spaceweasel/levelog AllLevelLogger,Underlying

// MinLogger is the smallest leveled logger: the five standard severities.
// Every method treats msg as a fmt.Sprintf format when args are given and
// as literal text otherwise.
type MinLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warning(msg string, args ...any)
	Error(msg string, args ...any)
	Critical(msg string, args ...any)
}

// FatalLogger logs at Fatal.
type FatalLogger interface {
	Fatal(msg string, args ...any)
}

// ExceptionLogger logs an error message together with the stack that led
// to it.
type ExceptionLogger interface {
	Exception(msg string, args ...any)
}

// Underlying is what a backend must provide to sit behind a
// DelegatingLogger: the standard severities, logging at an arbitrary level,
// and access to its name, minimum level and disabled state.
type Underlying interface {
	MinLogger
	FatalLogger
	ExceptionLogger
	Log(level Level, msg string, args ...any)
	Name() string
	Level() Level
	SetLevel(level Level)
	Disabled() bool
}

// HasUnderlying is implemented by loggers that wrap an Underlying.
type HasUnderlying interface {
	Underlying() Underlying
}

// AllLevelLogger offers a method for every named severity.
type AllLevelLogger interface {
	MinLogger
	FatalLogger
	ExceptionLogger
	Trace(msg string, args ...any)
	Notice(msg string, args ...any)
	Success(msg string, args ...any)
	Log(level Level, msg string, args ...any)
}
