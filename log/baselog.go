package log

import (
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
)

var Logger *log.Logger

type Fields = log.Fields

func init() {
	Logger = log.New()
	// Output to stdout instead of the default stderr
	Logger.SetOutput(os.Stdout)
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets the level ("trace" ... "panic") and switches to JSON output
// when json is true.
func Configure(level string, json bool) error {
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return err
		}
		Logger.SetLevel(lvl)
	}
	if json {
		Logger.SetFormatter(&log.JSONFormatter{})
	} else {
		Logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

func WithFields(fields Fields) *log.Entry {
	return Logger.WithFields(fields)
}

func Debug(args ...interface{}) {
	Logger.Debug(args...)
}

func Info(args ...interface{}) {
	Logger.Info(args...)
}

func Warn(args ...interface{}) {
	Logger.Warn(args...)
}

func Error(args ...interface{}) {
	Logger.Error(args...)
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Logger.Errorf(format, args...)
}

//Not recommended
func Fatalf(format string, args ...interface{}) {
	Logger.Fatalf(format, args...)
}

// Stack returns the current goroutine's stack.
func Stack() []byte {
	buf := make([]byte, 64<<10)
	n := runtime.Stack(buf, false)
	return buf[:n]
}

//use for defer recover
func PrintPanicStack() {
	if x := recover(); x != nil {
		Logger.Errorf("Recovered %v\nStack:%s", x, Stack())
	}
}
