// Command orgctl migrates the database and prints listings and dashboard
// counters from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/yukikurage/studentorg/internal/config"
	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/logger"
	"github.com/yukikurage/studentorg/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &CLI{
		out: os.Stdout,
		db:  db,
		svc: services.New(db, cfg),
		cfg: cfg,
	}
	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		color.Red("Error: %v", err)
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  orgctl migrate
  orgctl stats
  orgctl list <colleges|programs|students|organizations|members> [-q text] [-ordering key] [-page n]`)
}
