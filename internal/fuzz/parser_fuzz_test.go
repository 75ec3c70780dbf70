package fuzztests

import (
	"context"
	"testing"
	"time"

	"m2l/internal/driver"
	"m2l/internal/source"
	"m2l/internal/testkit"
)

// parseTimeout bounds one input; exceeding it means recovery stopped
// consuming tokens.
const parseTimeout = 5 * time.Second

// FuzzParse runs the whole pipeline and checks the tree it returns.
func FuzzParse(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := source.New("fuzz.m2l", clampInput(input))

		type outcome struct {
			res *driver.ParseResult
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			res, err := driver.Parse(context.Background(), src, driver.ParseOptions{})
			done <- outcome{res, err}
		}()

		var out outcome
		select {
		case out = <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang: no result after %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
		if out.err != nil {
			t.Fatal(out.err)
		}
		res := out.res
		defer res.Destroy()

		if res.OK && (res.Diags.HasErrors() || !res.Root.IsValid()) {
			t.Fatalf("OK with errors=%v root=%d", res.Diags.HasErrors(), res.Root)
		}
		if !res.OK && !res.Diags.HasErrors() {
			t.Fatalf("failed parse without an error diagnostic: %q", truncateForLog(input, 200))
		}
		if err := testkit.CheckSpanInvariants(res.Tree, res.Root, src); err != nil && res.OK {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
