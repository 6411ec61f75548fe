package batch

import (
	"context"
	"fmt"

	"github.com/pkamau/versedeck/core"
	"github.com/pkamau/versedeck/core/output"
	"github.com/pkamau/versedeck/core/render"
	"github.com/pkamau/versedeck/core/sections"
)

// Event is one progress report. Index is 1-based within the batch.
type Event struct {
	Index   int
	Total   int
	Query   string
	Message string
	Err     error
}

// ProgressFunc receives progress events. The runner may invoke it from a
// background goroutine, so sinks must tolerate non-interactive callers;
// an append-only log is the intended consumer.
type ProgressFunc func(e Event)

// Result is the outcome for one query.
type Result struct {
	Query string
	Path  string
	Err   error
}

// Summary aggregates a whole batch. Failures never abort the batch; each
// query is isolated.
type Summary struct {
	Succeeded int
	Failed    int
	Results   []Result
}

// Runner wires the pipeline stages for batch processing.
type Runner struct {
	Fetcher  core.Fetcher
	Parser   *sections.Parser
	Renderer core.Renderer
	Writer   *output.Writer
	Progress ProgressFunc
}

// Run processes the queries in input order, deduplicated, one at a time.
func (r *Runner) Run(ctx context.Context, queries []string) Summary {
	q := NewQueue()
	for _, s := range queries {
		q.Add(s)
	}
	total := q.Len()

	var sum Summary
	for i := 1; q.HasNext(); i++ {
		query := q.Next()
		path, err := r.Process(ctx, query, i, total)
		if err != nil {
			sum.Failed++
		} else {
			sum.Succeeded++
		}
		sum.Results = append(sum.Results, Result{Query: query, Path: path, Err: err})
	}
	return sum
}

// Process runs a single query through fetch, parse, build, render, and
// write, returning the written path.
func (r *Runner) Process(ctx context.Context, query string, idx, total int) (string, error) {
	r.emit(idx, total, query, "processing: "+query, nil)

	doc, err := r.Fetcher.Fetch(ctx, query)
	if err != nil {
		err = fmt.Errorf("could not retrieve lyrics: %w", err)
		r.emit(idx, total, query, "", err)
		return "", err
	}
	if !doc.HasLyrics() {
		err = fmt.Errorf("%s (%s): %w", doc.Title, doc.URL, core.ErrNoLyrics)
		r.emit(idx, total, query, "", err)
		return "", err
	}
	r.emit(idx, total, query, "✓ found: "+doc.Title, nil)

	secs := r.Parser.Parse(doc.Lyrics)
	r.emit(idx, total, query, fmt.Sprintf("✓ parsed %d sections", len(secs)), nil)

	slides := render.BuildSlides(doc.Title, secs)
	data, err := r.Renderer.Render(doc, slides)
	if err != nil {
		err = fmt.Errorf("rendering: %w", err)
		r.emit(idx, total, query, "", err)
		return "", err
	}

	path, err := r.Writer.Write(query, data, r.Renderer.Extension())
	if err != nil {
		r.emit(idx, total, query, "", err)
		return "", err
	}
	r.emit(idx, total, query, "✓ saved: "+path, nil)
	return path, nil
}

func (r *Runner) emit(idx, total int, query, msg string, err error) {
	if r.Progress == nil {
		return
	}
	r.Progress(Event{Index: idx, Total: total, Query: query, Message: msg, Err: err})
}
