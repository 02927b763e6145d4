package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

var (
	defaultLogger = log.New(os.Stdout, "", log.LstdFlags)
	minLevel      = INFO
)

func SetOutput(w *os.File) {
	defaultLogger.SetOutput(w)
}

func SetFlags(flag int) {
	defaultLogger.SetFlags(flag)
}

// SetLevel drops messages below the given level. Unknown names keep the
// current level.
func SetLevel(name string) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		minLevel = DEBUG
	case "INFO":
		minLevel = INFO
	case "WARN":
		minLevel = WARN
	case "ERROR":
		minLevel = ERROR
	case "FATAL":
		minLevel = FATAL
	}
}

func formatMessage(level LogLevel, format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return fmt.Sprintf("[%s] [SSHDECK] %s", levelNames[level], msg)
}

func logAt(level LogLevel, format string, args ...interface{}) {
	if level < minLevel {
		return
	}
	defaultLogger.Println(formatMessage(level, format, args...))
}

func Debug(format string, args ...interface{}) {
	logAt(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	logAt(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	logAt(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	logAt(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	defaultLogger.Fatal(formatMessage(FATAL, format, args...))
}

func Printf(format string, args ...interface{}) {
	defaultLogger.Printf(format, args...)
}

func Println(args ...interface{}) {
	defaultLogger.Println(args...)
}
