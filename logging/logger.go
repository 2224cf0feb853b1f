// Package logging holds the process-wide logger used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is shared by the cmd and viewer packages. Core packages do not log.
var Logger = logrus.New()

// file is the rotating log file, when one is configured.
var file *lumberjack.Logger

// Options configures Init.
type Options struct {
	Level   string    // logrus level name; empty means warn
	File    string    // rotate logs into this file instead of Output
	Verbose bool      // raise the level to at least debug
	Output  io.Writer // defaults to stderr
}

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.WarnLevel)
	Logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// Init configures Logger. It may be called more than once; a previously
// opened log file is closed.
func Init(opts Options) error {
	level := logrus.WarnLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	if opts.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	Logger.SetLevel(level)

	if err := Close(); err != nil {
		return err
	}

	if opts.File != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		Logger.SetOutput(file)
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
		return nil
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	Logger.SetOutput(out)
	Logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// Close releases the log file opened by Init, if any.
func Close() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
