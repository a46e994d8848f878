package engine

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"loom/internal/config"
	"loom/internal/logging"
	"loom/internal/pipeline"
	"loom/internal/telemetry"
)

type Config struct {
	PipelinePath string
	MetricsPort  int // 0 disables the exporter
	Resolver     pipeline.Resolver

	// In/Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer
}

// Bootstrap loads the pipeline document, builds the pipeline against
// cfg.Resolver, and starts the metrics exporter.
func Bootstrap(ctx context.Context, cfg Config) (*Engine, error) {
	doc, err := config.Load(cfg.PipelinePath)
	if err != nil {
		return nil, errors.Wrap(err, "load pipeline document")
	}

	pipe, err := pipeline.NewBuilder(cfg.Resolver).Build(doc)
	if err != nil {
		return nil, errors.Wrap(err, "build pipeline")
	}

	if cfg.MetricsPort > 0 {
		telemetry.Expose(cfg.MetricsPort)
	}

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	logging.L().Info("pipeline ready",
		"id", pipe.ID(), "module", pipe.Module(), "steps", pipe.Len())

	return &Engine{pipe: pipe, in: in, out: out}, nil
}
