package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"m2l/internal/observ"
	"m2l/internal/source"
	"m2l/internal/trace"
)

// Ext is the source file extension picked up by CollectFiles.
const Ext = ".m2l"

// BatchOptions configure ParseFiles.
type BatchOptions struct {
	Parse ParseOptions
	Jobs  int  // <= 0 means GOMAXPROCS
	Sink  Sink // optional
}

// FileResult is the outcome for one path. Err is set when the file could not
// be loaded or its pipeline could not be built; syntax problems live in
// Result.Diags.
type FileResult struct {
	Path   string
	Result *ParseResult
	Err    error
}

// CollectFiles returns every .m2l file under dir, sorted.
func CollectFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// ParseFiles runs one independent pipeline per path, at most opts.Jobs at a
// time. Results come back in input order. Sources are loaded into fileSet
// up front since FileSet is not goroutine-safe. The returned error is only
// set when ctx was cancelled.
func ParseFiles(ctx context.Context, fileSet *source.FileSet, paths []string, opts BatchOptions) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	tracer := trace.FromContext(ctx)
	batch := trace.Begin(tracer, trace.ScopeDriver, "batch", trace.ParentID(ctx))
	defer batch.End("")
	ctx = trace.WithParent(ctx, batch)

	timer := opts.Parse.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}

	sources := make([]*source.Source, len(paths))
	loadIdx := timer.Begin("load")
	for i, path := range paths {
		results[i].Path = path
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		src, err := fileSet.Load(path)
		if err != nil {
			results[i].Err = err
			emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		sources[i] = src
	}
	timer.End(loadIdx, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, src := range sources {
		if src == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := paths[i]
			fileSpan := trace.BeginFile(tracer, path, batch.ID())
			fctx := trace.WithParent(gctx, fileSpan)

			emit(opts.Sink, Event{File: path, Stage: StageScan, Status: StatusWorking})
			popts := opts.Parse
			popts.Timer = timer
			res, err := Parse(fctx, src, popts)
			if err != nil {
				results[i].Err = err
				fileSpan.End("error")
				emit(opts.Sink, Event{File: path, Stage: StageParse, Status: StatusError, Err: err})
				return nil
			}
			results[i].Result = res
			fileSpan.End(okDetail(res.OK))

			status := StatusDone
			if !res.OK {
				status = StatusError
			}
			emit(opts.Sink, Event{File: path, Stage: StageParse, Status: status})
			return nil
		})
	}
	err := g.Wait()
	emit(opts.Sink, Event{Stage: StageParse, Status: StatusDone})
	return results, err
}
