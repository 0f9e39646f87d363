// Package logging builds the charmbracelet loggers shared by the game
// components and keeps their levels in sync.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// Set is a family of category loggers writing to one destination.
// Changing the level of the set changes every member.
type Set struct {
	mu      sync.Mutex
	w       io.Writer
	level   log.Level
	loggers map[string]*log.Logger
}

// NewSet creates a set writing to w. debug selects DebugLevel, otherwise
// InfoLevel.
func NewSet(w io.Writer, debug bool) *Set {
	return &Set{
		w:       w,
		level:   levelFor(debug),
		loggers: make(map[string]*log.Logger),
	}
}

// For returns the logger for a category, creating it on first use.
func (s *Set) For(category string) *log.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.loggers[category]; ok {
		return l
	}
	l := log.NewWithOptions(s.w, log.Options{
		ReportTimestamp: true,
		Prefix:          category,
		Level:           s.level,
	})
	s.loggers[category] = l
	return l
}

// SetDebug switches every logger of the set between debug and info level.
func (s *Set) SetDebug(debug bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = levelFor(debug)
	for _, l := range s.loggers {
		l.SetLevel(s.level)
	}
}

// Debug reports whether the set logs at debug level.
func (s *Set) Debug() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level == log.DebugLevel
}

func levelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// OpenFile opens (appending) a log file, creating its directory.
// A leading ~ expands to the home directory.
func OpenFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
