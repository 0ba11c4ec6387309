package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Trace *log.Logger
)

var levelNames = map[LogLevel]string{
	ERROR: "ERROR",
	WARN:  "WARN",
	INFO:  "INFO",
	DEBUG: "DEBUG",
	TRACE: "TRACE",
}

func StringToLogLevel(value string) LogLevel {
	for level, name := range levelNames {
		if strings.EqualFold(name, value) {
			return level
		}
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	if name, ok := levelNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func init() {
	InitializeWithWriters(ERROR-1, io.Discard, io.Discard)
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	InitializeWithWriters(logLevel, os.Stdout, os.Stderr)
}

// InitializeWithWriters enables every level up to logLevel. Levels
// above it are discarded. Errors go to errOut, the rest to out.
func InitializeWithWriters(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	writerFor := func(level LogLevel, w io.Writer) io.Writer {
		if logLevel >= level {
			return w
		}
		return io.Discard
	}

	Error = log.New(writerFor(ERROR, errOut), "ERROR: ", flags)
	Warn = log.New(writerFor(WARN, out), "WARN:  ", flags)
	Info = log.New(writerFor(INFO, out), "INFO:  ", flags)
	Debug = log.New(writerFor(DEBUG, out), "DEBUG: ", flags)
	Trace = log.New(writerFor(TRACE, out), "TRACE: ", flags)
}
