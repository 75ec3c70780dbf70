package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity. Each level admits every scope up to and
// including its finest one.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // ring only, dumped when a run fails
	LevelPhase               // commands, scan and parse
	LevelDetail              // plus one span per batch file
	LevelDebug               // plus every token
)

var levels = [...]struct {
	name   string
	finest Scope
}{
	LevelOff:    {"off", 0},
	LevelError:  {"error", ScopePhase},
	LevelPhase:  {"phase", ScopePhase},
	LevelDetail: {"detail", ScopeFile},
	LevelDebug:  {"debug", ScopeNode},
}

func (l Level) String() string {
	if int(l) < len(levels) {
		return levels[l].name
	}
	return "unknown"
}

// ParseLevel converts a flag or config value to a Level. Empty means off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(s)
	if s == "" {
		return LevelOff, nil
	}
	for l, info := range levels {
		if info.name == s {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levels) {
		return false
	}
	return scope != 0 && scope <= levels[l].finest
}
