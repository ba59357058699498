package ui

import (
	"fmt"
	"log"
	"strings"
)

// EventSink receives structured diagnostic events from the UI.
// kv alternates keys and values.
type EventSink interface {
	Event(name string, kv ...any)
}

// LogSink writes events as "name key=value ..." lines to a logger.
type LogSink struct {
	l *log.Logger
}

// NewLogSink creates a sink backed by l.
func NewLogSink(l *log.Logger) *LogSink {
	return &LogSink{l: l}
}

func (s *LogSink) Event(name string, kv ...any) {
	var b strings.Builder
	b.WriteString(name)
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, " %v=?", kv[i])
		}
	}
	s.l.Print(b.String())
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Event(string, ...any) {}
