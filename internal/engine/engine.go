package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"loom/internal/pipeline"
	"loom/internal/telemetry"
)

type Engine struct {
	pipe *pipeline.Pipeline
	in   io.Reader
	out  io.Writer
}

// Pipeline returns the built pipeline.
func (e *Engine) Pipeline() *pipeline.Pipeline { return e.pipe }

// Run applies the pipeline to each input line until EOF or context
// cancellation. Cancellation takes effect between lines: a read
// already blocked on the input is not interrupted.
func (e *Engine) Run(ctx context.Context) error {
	grp, ctx := errgroup.WithContext(ctx)
	lines := make(chan string)

	grp.Go(func() error {
		defer close(lines)
		sc := bufio.NewScanner(e.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return sc.Err()
	})

	grp.Go(func() error {
		w := bufio.NewWriter(e.out)
		defer w.Flush()
		for line := range lines {
			start := time.Now()
			out := e.pipe.Apply(line)
			telemetry.ApplySeconds.Observe(time.Since(start).Seconds())
			telemetry.LinesProcessed.Inc()
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
		return nil
	})

	return grp.Wait()
}
