package driver

// Stage is a pipeline step reported to a Sink.
type Stage string

const (
	StageLoad  Stage = "load"
	StageScan  Stage = "scan"
	StageParse Stage = "parse"
)

// Status of a file within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file, or for the whole batch when File is
// empty.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

// Sink consumes progress events. Implementations must be goroutine-safe.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- ev
}

func emit(sink Sink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
