package observ

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerPhasesInOrder(t *testing.T) {
	tm := NewTimer()
	scan := tm.Begin("scan")
	tm.End(scan, "6 tokens")
	tm.Measure("parse", func() string { return "" })

	phases := tm.Phases()
	require.Len(t, phases, 2)
	assert.Equal(t, "scan", phases[0].Name)
	assert.Equal(t, "6 tokens", phases[0].Note)
	assert.Equal(t, "parse", phases[1].Name)
}

func TestTimerEndIgnoresBadHandles(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("scan")
	tm.End(idx, "first")
	tm.End(idx, "second")
	tm.End(-1, "")
	tm.End(42, "")
	assert.Equal(t, "first", tm.Phases()[0].Note)

	var nilTimer *Timer
	assert.Equal(t, -1, nilTimer.Begin("x"))
	nilTimer.End(0, "")
	assert.Empty(t, nilTimer.Report().Phases)
}

func TestTimerReportMergesByName(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Measure("scan", func() string { time.Sleep(time.Millisecond); return "" })
			tm.Measure("parse", func() string { return "" })
		}()
	}
	wg.Wait()

	report := tm.Report()
	require.Len(t, report.Phases, 2)
	assert.Equal(t, "scan", report.Phases[0].Name)
	assert.GreaterOrEqual(t, report.Phases[0].DurationMS, 8.0)
	assert.GreaterOrEqual(t, report.TotalMS, report.Phases[0].DurationMS)
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.Measure("tokenize", func() string { return "3 tokens" })
	out := tm.Summary()
	assert.True(t, strings.HasPrefix(out, "timings:\n  tokenize"))
	assert.Contains(t, out, "// 3 tokens")
	assert.Contains(t, out, "  total ")
}
