package logger

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// combinedTimeLayout is the timestamp layout of the Apache log formats.
const combinedTimeLayout = "02/Jan/2006:15:04:05 -0700"

// AccessEntry is one served request as recorded in the access log.
type AccessEntry struct {
	RemoteAddr string
	User       string
	Time       time.Time
	Method     string
	URI        string
	Proto      string
	Status     int
	Size       int
	Referer    string
	UserAgent  string
}

// AccessLog writes [AccessEntry] values in Apache combined log format.
type AccessLog struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAccessLog returns an AccessLog appending to path. The file is rotated
// once it grows beyond maxSizeMB megabytes.
func NewAccessLog(path string, maxSizeMB int) *AccessLog {
	return &AccessLog{
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: 5,
			Compress:   true,
		},
	}
}

// NewAccessLogWriter returns an AccessLog writing to w.
func NewAccessLogWriter(w io.Writer) *AccessLog {
	return &AccessLog{w: w}
}

// Write appends e as one line.
func (a *AccessLog) Write(e AccessEntry) error {
	line := FormatCombined(e)

	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := io.WriteString(a.w, line)
	return err
}

// Close releases the underlying file when there is one.
func (a *AccessLog) Close() error {
	if c, ok := a.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// FormatCombined renders e as a newline-terminated combined log line:
//
//	host ident user [time] "method uri proto" status size "referer" "agent"
func FormatCombined(e AccessEntry) string {
	host := e.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	size := "-"
	if e.Size > 0 {
		size = strconv.Itoa(e.Size)
	}

	return fmt.Sprintf("%s - %s [%s] \"%s %s %s\" %d %s %q %q\n",
		orDash(host),
		orDash(e.User),
		e.Time.Format(combinedTimeLayout),
		e.Method, e.URI, e.Proto,
		e.Status,
		size,
		orDash(e.Referer),
		orDash(e.UserAgent),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
