// Package levelog extends leveled logging with extra severities, a facade
// that forwards every named severity to a backend logger, and per-level
// message templates.
//
// Levels are plain integers. Beside the standard DEBUG, INFO, WARNING, ERROR
// and CRITICAL the package defines TRACEBACK, TRACE, SUCCESS, NOTICE,
// CMD-CALL and FATAL, spaced so that comparisons such as level >= Warning
// keep working. Names live in a Registry; NewDirectLogger registers the
// extended names before the first message is logged.
//
// A LevelFormatter picks the template for a level. SameFormat uses one
// template throughout; LevelFormats keys templates by level, and a level
// without its own template borrows the one of the nearest configured level
// above it. A StreamFormatMapper assigns a formatter to each output stream,
// so a terminal and a file can render the same record differently.
//
//	reg := levelog.NewRegistry()
//	mapper := levelog.NewStreamFormatMapper(map[io.Writer]levelog.LevelFormatter{
//		os.Stderr: levelog.NewLevelFormats(nil),
//	})
//	out, _ := levelog.NewStreamAppender(os.Stderr, mapper)
//	std := levelog.New("app", levelog.Trace,
//		levelog.WithRegistry(reg), levelog.WithAppenders(out))
//	log := levelog.NewDirectLogger(std, levelog.WithLevelRegistry(reg))
//	log.Success("deployed %s", version)
//
// Templates are made of percent tags: %date, %level, %logger, %func, %file,
// %line, %context, %message and %newline, with the short forms %d, %s, %f,
// %c, %m and %n. Use %% for a literal percent sign.
//
// Backends other than StdLogger are available in the zapadapter,
// logrusadapter and slogadapter packages.
package levelog
