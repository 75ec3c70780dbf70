package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Format selects the encoding of emitted events.
type Format uint8

const (
	FormatAuto   Format = iota // pick from the output path
	FormatText                 // aligned columns for terminals
	FormatNDJSON               // one JSON object per line
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
}

// epoch anchors the elapsed column of the text format.
var epoch = time.Now()

// FormatEvent encodes one event, newline-terminated.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return appendNDJSON(nil, ev)
	}
	return appendText(nil, ev)
}

type jsonEvent struct {
	Time       string            `json:"time"`
	Seq        uint64            `json:"seq"`
	Kind       string            `json:"kind"`
	Scope      string            `json:"scope"`
	SpanID     uint64            `json:"span_id,omitempty"`
	ParentID   uint64            `json:"parent_id,omitempty"`
	GID        uint64            `json:"gid,omitempty"`
	Name       string            `json:"name"`
	Path       string            `json:"path,omitempty"`
	Detail     string            `json:"detail,omitempty"`
	DurationUS int64             `json:"dur_us,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

func appendNDJSON(dst []byte, ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:       ev.Time.UTC().Format(time.RFC3339Nano),
		Seq:        ev.Seq,
		Kind:       ev.Kind.String(),
		Scope:      ev.Scope.String(),
		SpanID:     ev.SpanID,
		ParentID:   ev.ParentID,
		GID:        ev.GID,
		Name:       ev.Name,
		Path:       ev.Path,
		Detail:     ev.Detail,
		DurationUS: ev.Duration.Microseconds(),
		Extra:      ev.Extra,
	})
	if err != nil {
		return fmt.Appendf(dst, "{\"kind\":\"error\",\"detail\":%q}\n", err.Error())
	}
	return append(append(dst, data...), '\n')
}

var markers = [...]byte{
	KindSpanBegin: '+',
	KindSpanEnd:   '-',
	KindPoint:     '.',
	KindHeartbeat: '~',
}

// appendText renders
//
//	    12.345ms phase      - scan ok [81µs] diagnostics=0 tokens=5
//
// Elapsed time counts from process start. The name column is indented by
// scope depth.
func appendText(dst []byte, ev *Event) []byte {
	elapsed := float64(ev.Time.Sub(epoch).Microseconds()) / 1000
	dst = fmt.Appendf(dst, "%10.3fms %-6s ", elapsed, ev.Scope)
	for range ev.Scope.depth() {
		dst = append(dst, "  "...)
	}

	marker := byte('?')
	if int(ev.Kind) < len(markers) && markers[ev.Kind] != 0 {
		marker = markers[ev.Kind]
	}
	dst = append(dst, marker, ' ')
	dst = append(dst, ev.Name...)
	if ev.Path != "" {
		dst = append(dst, ' ')
		dst = append(dst, ev.Path...)
	}
	if ev.Detail != "" {
		dst = append(dst, ' ')
		dst = append(dst, ev.Detail...)
	}
	if ev.Kind == KindSpanEnd {
		dst = fmt.Appendf(dst, " [%s]", ev.Duration.Round(time.Microsecond))
	}
	for _, k := range slices.Sorted(maps.Keys(ev.Extra)) {
		dst = append(dst, ' ')
		dst = append(dst, k...)
		dst = append(dst, '=')
		dst = append(dst, ev.Extra[k]...)
	}
	return append(dst, '\n')
}
