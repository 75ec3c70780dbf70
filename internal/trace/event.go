package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI command or batch
	ScopePhase                   // scan, parse
	ScopeFile                    // one file of a batch
	ScopeNode                    // individual tokens
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePhase:  "phase",
	ScopeFile:   "file",
	ScopeNode:   "node",
}

// nesting is how deep a scope usually sits in a batch run: a command wraps
// files, a file wraps its phases, a phase wraps its tokens.
var nesting = [...]int{
	ScopeDriver: 0,
	ScopeFile:   1,
	ScopePhase:  2,
	ScopeNode:   3,
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

func (s Scope) depth() int {
	if int(s) < len(nesting) {
		return nesting[s]
	}
	return 0
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	GID      uint64
	Name     string // "scan", "parse", "batch", "file", "token", ...
	Path     string // source file the event belongs to, if any
	Detail   string
	Duration time.Duration // end events only
	Extra    map[string]string
}
