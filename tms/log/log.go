// Package log provides function to log, trace, debug work of the system.
package log

import (
	"flag"
	"fmt"
	"io"
	reallog "log"
	"log/syslog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var (
	dflt      Logger
	useStderr bool
	useSyslog bool
	useFile   string
	logLevel  string
	fileLine  bool

	spewConfig = spew.ConfigState{
		Indent:   "  ",
		SortKeys: true,
		MaxDepth: 3,
	}

	colorPriority = map[syslog.Priority]string{
		syslog.LOG_EMERG:   NC,
		syslog.LOG_ALERT:   LightGreen,
		syslog.LOG_CRIT:    LightRed,
		syslog.LOG_ERR:     LightRed,
		syslog.LOG_WARNING: Yellow,
		syslog.LOG_NOTICE:  NC,
		syslog.LOG_INFO:    Blue,
		syslog.LOG_DEBUG:   Green,
	}

	priorityNames = map[syslog.Priority]string{
		syslog.LOG_EMERG:   "EMERGENCY",
		syslog.LOG_ALERT:   "ALERT",
		syslog.LOG_CRIT:    "CRITICAL",
		syslog.LOG_ERR:     "ERROR",
		syslog.LOG_WARNING: "WARNING",
		syslog.LOG_NOTICE:  "NOTICE",
		syslog.LOG_INFO:    "INFO",
		syslog.LOG_DEBUG:   "DEBUG",
		LOG_TRACE:          "TRACE",
	}
)

const (
	LOG_TRACE = syslog.LOG_DEBUG + 1

	LightRed    = "\033[1;31m"
	Red         = "\033[0;31m"
	Yellow      = "\033[0;33m"
	LightYellow = "\033[1;33m"
	Blue        = "\033[0;34m"
	LightBlue   = "\033[1;34m"
	NC          = "\033[0m"
	Green       = "\033[0;32m"
	LightGreen  = "\033[1;32m"
)

func init() {
	flag.BoolVar(&useStderr, "stdlog", false, "Write log to stderr?")
	flag.BoolVar(&useSyslog, "syslog", false, "Write log to syslog?")
	flag.BoolVar(&fileLine, "srcloc", true, "Find and write file:lineno to log?")
	flag.StringVar(&useFile, "filelog", "", "Write log to this file")
	flag.StringVar(&logLevel, "log", "info", "Set the logging level")
}

// ParseLevel maps a level name such as "debug" to its priority.
func ParseLevel(name string) (syslog.Priority, error) {
	name = strings.ToUpper(name)
	for prio, n := range priorityNames {
		if n == name {
			return prio, nil
		}
	}
	return 0, fmt.Errorf("unknown logging level: %v", name)
}

// Init is used to setup a logger
// Also it set ups different sources for logging
func Init(procname string) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		reallog.Fatal(err)
	}
	logger := New(level)
	if useStderr {
		logger.textlogs = append(logger.textlogs, os.Stderr)
	}
	if useFile != "" {
		f, err := os.OpenFile(useFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			reallog.Fatalf("Could not open log file: %v", useFile)
		}
		logger.textlogs = append(logger.textlogs, f)
	}
	if useSyslog {
		w, err := syslog.Dial("", "", syslog.LOG_LOCAL0, procname)
		if err != nil {
			reallog.Fatalf("Could not dial syslog: %v", err)
		}
		logger.syslogs = append(logger.syslogs, w)
	}
	if len(logger.textlogs) == 0 && len(logger.syslogs) == 0 {
		logger.textlogs = append(logger.textlogs, os.Stderr)
	}
	dflt = logger
}

// SetDefault replaces the logger behind the package level functions.
func SetDefault(l Logger) {
	dflt = l
}

type Logger interface {
	Log(prio syslog.Priority, msgFmt string, args ...interface{})
	TraceMsg(msgFmt string, args ...interface{})
	Fatal(msgFmt string, args ...interface{})

	Emerg(msgFmt string, args ...interface{})
	Alert(msgFmt string, args ...interface{})
	Crit(msgFmt string, args ...interface{})
	Error(msgFmt string, args ...interface{})
	Warn(msgFmt string, args ...interface{})
	Notice(msgFmt string, args ...interface{})
	Info(msgFmt string, args ...interface{})
	Debug(msgFmt string, args ...interface{})
}

// TextLogger writes colored lines to text writers and to syslog.
type TextLogger struct {
	level    syslog.Priority
	fileLine bool
	syslogs  []*syslog.Writer
	textlogs []io.Writer
}

// New returns a logger without any destination; see AddWriter.
func New(level syslog.Priority) *TextLogger {
	return &TextLogger{level: level, fileLine: fileLine}
}

// AddWriter adds a text destination.
func (l *TextLogger) AddWriter(w io.Writer) *TextLogger {
	l.textlogs = append(l.textlogs, w)
	return l
}

// Convenience function for debugging
func Spew(obj ...interface{}) string {
	return spewConfig.Sdump(obj...)
}

func (l *TextLogger) Log(prio syslog.Priority, msgFmt string, args ...interface{}) {
	if prio > l.level {
		return
	}
	msg := spewConfig.Sprintf(msgFmt, args...)
	if l.fileLine || prio == LOG_TRACE {
		file, line := logSite()
		msg = fmt.Sprintf("%s: %v (%v:%v) %v", coloredName(prio), time.Now().Format(time.RFC3339Nano), file, line, msg)
	} else {
		msg = fmt.Sprintf("%s: %v %v", coloredName(prio), time.Now().Format(time.RFC3339Nano), msg)
	}
	l.writeToSyslogs(prio, msg)
	for _, w := range l.textlogs {
		io.WriteString(w, msg+"\n")
	}
}

func (l *TextLogger) TraceMsg(msgFmt string, args ...interface{}) {
	l.Log(LOG_TRACE, msgFmt, args...)
}

func (l *TextLogger) writeToSyslogs(prio syslog.Priority, msg string) {
	for _, w := range l.syslogs {
		var err error
		switch prio {
		case syslog.LOG_EMERG:
			err = w.Emerg(msg)
		case syslog.LOG_ALERT:
			err = w.Alert(msg)
		case syslog.LOG_CRIT:
			err = w.Crit(msg)
		case syslog.LOG_ERR:
			err = w.Err(msg)
		case syslog.LOG_WARNING:
			err = w.Warning(msg)
		case syslog.LOG_NOTICE:
			err = w.Notice(msg)
		case syslog.LOG_INFO:
			err = w.Info(msg)
		default:
			err = w.Debug(msg)
		}
		if err != nil {
			reallog.Printf("Error returned by syslog: %v", err)
		}
	}
}

func logSite() (string, int) {
	for skip := 1; ; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			return "", -1
		}
		if !strings.Contains(file, "tms/log/") {
			if idx := strings.LastIndex(file, "tms/"); idx >= 0 {
				file = file[idx+len("tms/"):]
			}
			return file, line
		}
	}
}

func coloredName(prio syslog.Priority) string {
	name, ok := priorityNames[prio]
	if !ok {
		name = "UNKNOWN"
	}
	return colorPriority[prio] + name + NC
}

func (l *TextLogger) Fatal(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_CRIT, msgFmt, args...)
	os.Exit(1)
}
func (l *TextLogger) Emerg(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_EMERG, msgFmt, args...)
}
func (l *TextLogger) Alert(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_ALERT, msgFmt, args...)
}
func (l *TextLogger) Crit(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_CRIT, msgFmt, args...)
}
func (l *TextLogger) Error(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_ERR, msgFmt, args...)
}
func (l *TextLogger) Warn(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_WARNING, msgFmt, args...)
}
func (l *TextLogger) Notice(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_NOTICE, msgFmt, args...)
}
func (l *TextLogger) Info(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_INFO, msgFmt, args...)
}
func (l *TextLogger) Debug(msgFmt string, args ...interface{}) {
	l.Log(syslog.LOG_DEBUG, msgFmt, args...)
}

/************
 *  DEFAULT logger interface, no-ops until Init
 */
func Log(prio syslog.Priority, msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Log(prio, msgFmt, args...)
	}
}
func TraceMsg(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.TraceMsg(msgFmt, args...)
	}
}
func Fatal(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Fatal(msgFmt, args...)
	}
	reallog.Fatalf(msgFmt, args...)
}
func Emerg(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Emerg(msgFmt, args...)
	}
}
func Alert(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Alert(msgFmt, args...)
	}
}
func Crit(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Crit(msgFmt, args...)
	}
}
func Error(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Error(msgFmt, args...)
	}
}
func Warn(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Warn(msgFmt, args...)
	}
}
func Notice(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Notice(msgFmt, args...)
	}
}
func Info(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Info(msgFmt, args...)
	}
}
func Debug(msgFmt string, args ...interface{}) {
	if dflt != nil {
		dflt.Debug(msgFmt, args...)
	}
}
