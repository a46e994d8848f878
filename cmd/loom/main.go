package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"loom/internal/engine"
	"loom/internal/logging"
	"loom/plugin"
	"loom/plugin/builtin"
)

func main() {
	cfgPath := flag.String("config", "pipeline.yml", "pipeline document to load")
	metricsPort := flag.Int("metrics-port", 9100, "port for /metrics (0 disables)")
	flag.Parse()

	logging.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table := plugin.NewTable()
	table.Register(builtin.Name, builtin.Namespace())

	e, err := engine.Bootstrap(ctx, engine.Config{
		PipelinePath: *cfgPath,
		MetricsPort:  *metricsPort,
		Resolver:     table,
	})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
