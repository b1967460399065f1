package logging

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"github.com/fatih/color"
)

// writer is an io.Writer that splits its input stream into lines and writes
// those lines to an underlying logger.
type writer struct {
	// callback is the logging callback.
	callback func(string)
	// buffer is any incomplete line fragment left over from a previous write.
	buffer []byte
}

// trimCarriageReturn trims any single trailing carriage return from the end of
// a byte slice.
func trimCarriageReturn(buffer []byte) []byte {
	if len(buffer) > 0 && buffer[len(buffer)-1] == '\r' {
		return buffer[:len(buffer)-1]
	}
	return buffer
}

// Write implements io.Writer.Write.
func (w *writer) Write(buffer []byte) (int, error) {
	// Append the data to our internal buffer.
	w.buffer = append(w.buffer, buffer...)

	// Process all lines in the buffer, tracking the number of bytes that we
	// process.
	var processed int
	remaining := w.buffer
	for {
		// Find the index of the next newline character.
		index := bytes.IndexByte(remaining, '\n')
		if index == -1 {
			break
		}

		// Process the line.
		w.callback(string(trimCarriageReturn(remaining[:index])))

		// Update the number of bytes that we've processed.
		processed += index + 1

		// Update the remaining slice.
		remaining = remaining[index+1:]
	}

	// If we managed to process bytes, then truncate our internal buffer.
	if processed > 0 {
		// Compute the number of leftover bytes.
		leftover := len(w.buffer) - processed

		// If there are leftover bytes, then shift them to the front of the
		// buffer.
		if leftover > 0 {
			copy(w.buffer[:leftover], w.buffer[processed:])
		}

		// Truncate the buffer.
		w.buffer = w.buffer[:leftover]
	}

	// Done.
	return len(buffer), nil
}

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is designed to use the
// standard logger provided by the log package, so it respects any flags set
// for that logger. It is safe for concurrent usage.
type Logger struct {
	// level is the maximum level at which the logger will emit messages.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
}

// NewLogger creates a new logger that emits messages at or below the
// specified level.
func NewLogger(level Level) *Logger {
	return &Logger{level: level}
}

// Level returns the logger's level. It is safe to call on a nil logger, in
// which case it returns LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
	}
}

// output is the internal logging method.
func (l *Logger) output(calldepth int, line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	log.Output(calldepth, line)
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	if l != nil && l.level >= LevelError {
		l.output(3, color.RedString("Error: %v", err))
	}
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l != nil && l.level >= LevelWarn {
		l.output(3, color.YellowString("Warning: %v", err))
	}
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	if l != nil && l.level >= LevelInfo {
		l.output(3, fmt.Sprint(v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l != nil && l.level >= LevelInfo {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Infoln logs information with semantics equivalent to fmt.Println.
func (l *Logger) Infoln(v ...interface{}) {
	if l != nil && l.level >= LevelInfo {
		l.output(3, fmt.Sprintln(v...))
	}
}

// Debug logs advanced execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	if l != nil && l.level >= LevelDebug {
		l.output(3, fmt.Sprint(v...))
	}
}

// Debugf logs advanced execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l != nil && l.level >= LevelDebug {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Debugln logs advanced execution information with semantics equivalent to
// fmt.Println.
func (l *Logger) Debugln(v ...interface{}) {
	if l != nil && l.level >= LevelDebug {
		l.output(3, fmt.Sprintln(v...))
	}
}

// Trace logs low-level execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Trace(v ...interface{}) {
	if l != nil && l.level >= LevelTrace {
		l.output(3, fmt.Sprint(v...))
	}
}

// Tracef logs low-level execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l != nil && l.level >= LevelTrace {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Traceln logs low-level execution information with semantics equivalent to
// fmt.Println.
func (l *Logger) Traceln(v ...interface{}) {
	if l != nil && l.level >= LevelTrace {
		l.output(3, fmt.Sprintln(v...))
	}
}

// Writer returns an io.Writer that writes lines using Infoln.
func (l *Logger) Writer() io.Writer {
	// If the logger won't emit at this level, then we can just discard input
	// since it won't be logged anyway. This saves us the overhead of scanning
	// lines.
	if l.Level() < LevelInfo {
		return ioutil.Discard
	}

	// Create the writer.
	return &writer{
		callback: func(s string) {
			l.Infoln(s)
		},
	}
}

// DebugWriter returns an io.Writer that writes lines using Debugln.
func (l *Logger) DebugWriter() io.Writer {
	// If the logger won't emit at this level, then we can just discard input
	// since it won't be logged anyway. This saves us the overhead of scanning
	// lines.
	if l.Level() < LevelDebug {
		return ioutil.Discard
	}

	// Create the writer.
	return &writer{
		callback: func(s string) {
			l.Debugln(s)
		},
	}
}
