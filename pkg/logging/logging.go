package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// verbosityLevels maps the count of -v flags to a level. Anything past the
// end of the table logs everything.
var verbosityLevels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

func levelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(verbosityLevels) {
		return zerolog.TraceLevel
	}
	return verbosityLevels[verbosity]
}

// SetupLogger installs the global logger: human readable lines on stderr
// and JSON lines appended to the state log file. A log file that cannot be
// opened only costs the file output.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	logPath := getLogFilePath()
	file, fileErr := openLogFile(logPath)

	var out io.Writer = console
	if fileErr == nil {
		out = zerolog.MultiLevelWriter(console, file)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Log file unavailable, logging to stderr only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithFields returns the global logger carrying every field of fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	return log.With().Fields(fields).Logger()
}

// getLogFilePath returns $XDG_STATE_HOME/placer/placer.log
func getLogFilePath() string {
	return filepath.Join(xdg.StateHome, "placer", "placer.log")
}

// openLogFile opens path for appending. The state directory is private to
// the user since the log records their paths and commands.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot open log file")
	}
	return f, nil
}

// LogCommand records an external command about to run in dir
func LogCommand(dir, path string, args []string) {
	log.Debug().
		Str("dir", dir).
		Str("command", path).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs operation at debug level and returns the function
// that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger = logger.With().Str("operation", operation).Logger()
	logger.Debug().Msg("Operation started")
	return func() {
		logger.Debug().Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}
