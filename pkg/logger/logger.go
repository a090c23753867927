package logger

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger with level and color controls.
//
// The logger doubles as a sink for subprocess output: Writer(level)
// hands out an io.Writer suitable for wiring into meson/ninja stdout,
// while the *f methods emit discrete, newline-terminated messages.
type Logger interface {
	// information only of interest when debugging the driver itself
	Debugf(format string, a ...interface{})

	// information a user might not want on every build, but useful when
	// chasing down a misbehaving configure or test step
	Verbosef(format string, a ...interface{})

	// information we always want to show
	Infof(format string, a ...interface{})

	Warnf(format string, a ...interface{})

	Errorf(format string, a ...interface{})

	Write(level Level, bytes []byte)

	// an io.Writer that filters to the given level, e.g. for passing to
	// a subprocess
	Writer(level Level) io.Writer

	Level() Level

	SupportsColor() bool
}

type Level struct {
	severity int32
}

// If l is the logger level, determine if we should display
// logs of the given severity.
func (l Level) ShouldDisplay(log Level) bool {
	return l.severity <= log.severity
}

var (
	DebugLvl   = Level{severity: 100}
	VerboseLvl = Level{severity: 200}
	InfoLvl    = Level{severity: 300}
	WarnLvl    = Level{severity: 400}
	ErrorLvl   = Level{severity: 500}
)

type loggerCtxKey struct{}

func Get(ctx context.Context) Logger {
	val := ctx.Value(loggerCtxKey{})
	if val != nil {
		return val.(Logger)
	}

	// No logger found in context, something is wrong.
	panic("Called logger.Get(ctx) on a context with no logger attached!")
}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

func NewLogger(minLevel Level, writer io.Writer) Logger {
	// adapted from fatih/color
	supportsColor := true
	if os.Getenv("TERM") == "dumb" {
		supportsColor = false
	} else {
		file, isFile := writer.(*os.File)
		if isFile {
			fd := file.Fd()
			supportsColor = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}
	}
	return NewFuncLogger(supportsColor, minLevel, func(level Level, bytes []byte) error {
		_, err := writer.Write(bytes)
		return err
	})
}

func getColor(l Logger, c color.Attribute) *color.Color {
	color := color.New(c)
	if !l.SupportsColor() {
		color.DisableColor()
	}
	return color
}

func Green(l Logger) *color.Color { return getColor(l, color.FgGreen) }
func Red(l Logger) *color.Color   { return getColor(l, color.FgRed) }
