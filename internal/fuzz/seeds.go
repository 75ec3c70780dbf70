package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

// builtinSeeds cover every token class and the recovery paths.
var builtinSeeds = []string{
	"",
	"x && x > 5",
	"add(lhs: 1, rhs: 2)",
	"a = b += c -= d *= e /= f %= g **= h //= i",
	"a || b && c == d != e < f <= g > h >= i",
	"1 + 2 - 3 * 4 / 5 % 6 ** 7 // 8",
	"++--!-x++--",
	"f()(1)(a: 2, b)(,)",
	"((((a))))",
	"1_000 1__0 0.5e 3.25 99999999999999999999",
	`"unterminated`,
	`"a" "b"`,
	"true false fun func",
	"@ # $ \x00 \xff 日本",
	"a;\n;b",
	"(a + ",
	"f(1, , 2)",
	"\r\n\t a \r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// все *.m2l из testdata
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".m2l" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
