package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m2l/internal/trace"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		lvl, err := trace.ParseLevel(s)
		require.NoError(t, err)
		assert.Equal(t, s, lvl.String())
	}
	lvl, err := trace.ParseLevel("PHASE")
	require.NoError(t, err)
	assert.Equal(t, trace.LevelPhase, lvl)

	lvl, err = trace.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, trace.LevelOff, lvl)

	_, err = trace.ParseLevel("loud")
	assert.ErrorContains(t, err, "invalid trace level")
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level trace.Level
		scope trace.Scope
		want  bool
	}{
		{trace.LevelOff, trace.ScopeDriver, false},
		{trace.LevelPhase, trace.ScopePhase, true},
		{trace.LevelPhase, trace.ScopeFile, false},
		{trace.LevelDetail, trace.ScopeFile, true},
		{trace.LevelDetail, trace.ScopeNode, false},
		{trace.LevelDebug, trace.ScopeNode, true},
		{trace.LevelError, trace.ScopePhase, true},
		{trace.LevelError, trace.ScopeFile, false},
		{trace.Level(42), trace.ScopeDriver, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.ShouldEmit(tt.scope), "%s/%s", tt.level, tt.scope)
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)

	root := trace.Begin(tr, trace.ScopeDriver, "m2l parse", 0)
	phase := trace.Begin(tr, trace.ScopePhase, "scan", root.ID())
	trace.BeginFile(tr, "a.m2l", phase.ID()).End("")
	phase.WithExtra("tokens", "5").WithExtra("diagnostics", "0").End("ok")
	root.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4, "file spans are filtered at phase level")
	assert.Contains(t, lines[0], "ms driver + m2l parse")
	assert.Contains(t, lines[1], "ms phase      + scan")
	assert.Contains(t, lines[2], "- scan ok [")
	assert.True(t, strings.HasSuffix(lines[2], "] diagnostics=0 tokens=5"), lines[2])
	assert.Contains(t, lines[3], "ms driver - m2l parse [")
}

func TestFileSpanCarriesPath(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	trace.BeginFile(tr, "dir/a.m2l", 0).End("failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ms file     + file dir/a.m2l")
	assert.Contains(t, lines[1], "- file dir/a.m2l failed [")

	buf.Reset()
	js := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatNDJSON)
	span := trace.BeginFile(js, "dir/a.m2l", 0)
	time.Sleep(time.Millisecond)
	span.End("ok")

	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var end map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &end))
	assert.Equal(t, "file", end["name"])
	assert.Equal(t, "dir/a.m2l", end["path"])
	assert.GreaterOrEqual(t, end["dur_us"], float64(1000))
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)
	trace.Point(tr, trace.ScopeNode, "token", "SYMBOL", 7)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "point", got["kind"])
	assert.Equal(t, "node", got["scope"])
	assert.Equal(t, "SYMBOL", got["detail"])
	assert.EqualValues(t, 7, got["parent_id"])
}

func TestInertSpan(t *testing.T) {
	s := trace.Begin(trace.Nop, trace.ScopeDriver, "x", 0)
	assert.Zero(t, s.ID())
	assert.Zero(t, s.End("done"))
	assert.Same(t, s, s.WithExtra("k", "v"))

	var nilSpan *trace.Span
	assert.Zero(t, nilSpan.End(""))
}

func TestRingTracerWraps(t *testing.T) {
	r := trace.NewRingTracer(3, trace.LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		trace.Point(r, trace.ScopePhase, name, "", 0)
	}
	snap := r.Snapshot()
	require.Len(t, snap, 3)
	names := []string{snap[0].Name, snap[1].Name, snap[2].Name}
	assert.Equal(t, []string{"c", "d", "e"}, names)
	assert.Less(t, snap[0].Seq, snap[2].Seq)

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf, trace.FormatText))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestNewPicksBackend(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	tr, err = trace.New(trace.Config{Level: trace.LevelError, Mode: trace.ModeStream})
	require.NoError(t, err)
	_, ok := trace.RingOf(tr)
	assert.True(t, ok, "error level always records into a ring")

	var buf bytes.Buffer
	tr, err = trace.New(trace.Config{Level: trace.LevelPhase, Mode: trace.ModeBoth, Output: &buf})
	require.NoError(t, err)
	trace.Begin(tr, trace.ScopePhase, "parse", 0).End("")
	require.NoError(t, tr.Close())

	ring, ok := trace.RingOf(tr)
	require.True(t, ok)
	assert.Len(t, ring.Snapshot(), 2)
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestNewFormatFromPath(t *testing.T) {
	path := t.TempDir() + "/out.ndjson"
	tr, err := trace.New(trace.Config{Level: trace.LevelPhase, OutputPath: path})
	require.NoError(t, err)
	trace.Point(tr, trace.ScopePhase, "p", "", 0)
	require.NoError(t, tr.Close())

	_, err = trace.ParseMode("sideways")
	assert.Error(t, err)
	_, err = trace.ParseFormat("xml")
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, trace.Nop, trace.FromContext(ctx))
	assert.Zero(t, trace.ParentID(ctx))

	r := trace.NewRingTracer(8, trace.LevelDebug)
	ctx = trace.WithTracer(ctx, r)
	assert.Equal(t, trace.Tracer(r), trace.FromContext(ctx))

	s := trace.Begin(r, trace.ScopeDriver, "root", 0)
	ctx = trace.WithParent(ctx, s)
	assert.Equal(t, s.ID(), trace.ParentID(ctx))
}

func TestHeartbeat(t *testing.T) {
	assert.Nil(t, trace.StartHeartbeat(context.Background(), trace.Nop, time.Millisecond))

	r := trace.NewRingTracer(64, trace.LevelPhase)
	hb := trace.StartHeartbeat(context.Background(), r, time.Millisecond)
	require.NotNil(t, hb)
	require.Eventually(t, func() bool { return len(r.Snapshot()) >= 2 }, time.Second, time.Millisecond)
	hb.Stop()

	n := len(r.Snapshot())
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, n, len(r.Snapshot()))
	assert.Equal(t, trace.KindHeartbeat, r.Snapshot()[0].Kind)
}
