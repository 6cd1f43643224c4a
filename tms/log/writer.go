package log

import (
	"bytes"
	"log/syslog"
)

// SyslogWriter is an io.Writer logging every complete line at Priority. It
// lets the standard library logger and third-party output reach our sinks.
type SyslogWriter struct {
	Priority syslog.Priority
	buf      bytes.Buffer
}

func NewSyslogWriter(prio syslog.Priority) *SyslogWriter {
	return &SyslogWriter{Priority: prio}
}

func (w *SyslogWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(w.buf.Next(i + 1))
		Log(w.Priority, "%s", line[:i])
	}
	return len(p), nil
}
