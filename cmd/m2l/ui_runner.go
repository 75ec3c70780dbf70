package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"m2l/internal/driver"
	"m2l/internal/source"
	"m2l/internal/ui"
)

type batchOutcome struct {
	results []driver.FileResult
	err     error
}

// runParseWithUI runs the batch in the background and drives the progress
// view from its events until the batch closes the channel.
func runParseWithUI(ctx context.Context, out io.Writer, title string, fs *source.FileSet, files []string, opts driver.BatchOptions) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		opts.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.ParseFiles(ctx, fs, files, opts)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the view may quit early; keep draining so the batch never blocks
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
