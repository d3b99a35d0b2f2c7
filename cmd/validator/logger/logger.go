// Package logger provides tagged loggers on top of the go-ethereum root logger
// and the terminal handler setup shared by all validator commands.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type logger struct {
	tag  string
	base log.Logger
}

func (l *logger) New(ctx ...interface{}) log.Logger {
	return &logger{tag: l.tag, base: l.base.New(ctx...)}
}

func (l *logger) GetHandler() log.Handler {
	return l.base.GetHandler()
}

func (l *logger) SetHandler(h log.Handler) {
	l.base.SetHandler(h)
}

func (l *logger) tagged(msg string) string {
	return fmt.Sprintf("[%s] %s", l.tag, msg)
}

func (l *logger) Trace(msg string, ctx ...interface{}) {
	l.base.Trace(l.tagged(msg), ctx...)
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.base.Debug(l.tagged(msg), ctx...)
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	l.base.Info(l.tagged(msg), ctx...)
}

func (l *logger) Warn(msg string, ctx ...interface{}) {
	l.base.Warn(l.tagged(msg), ctx...)
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	l.base.Error(l.tagged(msg), ctx...)
}

func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.base.Crit(l.tagged(msg), ctx...)
}

// New returns a logger that prefixes every message with the given tag
func New(tag string) log.Logger {
	return &logger{tag: tag, base: log.Root()}
}

// Setup installs a terminal handler on the root logger, colored when stderr is a terminal
func Setup(verbosity int) {
	var (
		output   io.Writer = os.Stderr
		useColor           = isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"
	)
	if useColor {
		output = colorable.NewColorableStderr()
	}
	glogger := log.NewGlogHandler(log.StreamHandler(output, log.TerminalFormat(useColor)))
	glogger.Verbosity(log.Lvl(verbosity))
	log.Root().SetHandler(glogger)
}
