package levelog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// CaptureStandardLog redirects the standard library's log package to l.
// Every line written through log is emitted by l at level, subject to the
// usual level checks, with the file and line log reports.
func CaptureStandardLog(l *StdLogger, level Level) {
	log.SetFlags(log.Lshortfile)
	log.SetOutput(l.StandardLogWriter(level))
}

// StandardLogWriter returns a writer that turns lines in the log package's
// Lshortfile format ("file.go:12: message") into records at level. Use it
// with log.New to capture a single *log.Logger.
func (l *StdLogger) StandardLogWriter(level Level) io.Writer {
	return bridge{l: l, level: level}
}

type bridge struct {
	l     *StdLogger
	level Level
}

func (b bridge) Write(p []byte) (int, error) {
	if !b.l.IsEnabledFor(b.level) {
		return len(p), nil
	}
	var msg string
	file := "???"
	line := 0

	parts := bytes.SplitN(p, []byte{':'}, 3)
	if len(parts) != 3 || len(parts[0]) == 0 || len(parts[2]) == 0 {
		msg = fmt.Sprintf("(Invalid log format): %s", p)
	} else {
		n, err := strconv.Atoi(string(parts[1]))
		if err != nil {
			msg = fmt.Sprintf("(Invalid line number): %s", p)
		} else {
			file, line = string(parts[0]), n
			msg = string(parts[2])
		}
	}

	r := b.l.record(b.level, strings.TrimSpace(msg))
	r.File, r.Line, r.Func = file, line, "???"
	b.l.emit(r)
	return len(p), nil
}
