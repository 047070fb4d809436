package main

import (
	"fmt"
	"log/slog"
	"os"

	"f1insights/internal/cli"
	"f1insights/internal/config"
	"f1insights/internal/insights"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	svc := insights.New(cfg)
	defer svc.Close()

	if svc.GatewayErr != nil {
		slog.Warn("AI gateway unavailable", "err", svc.GatewayErr)
	}

	if err := cli.New(svc).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
