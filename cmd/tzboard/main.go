package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/tzboard/internal/app"
	"github.com/five82/tzboard/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (default "+config.DefaultPath()+")")
	dbPath := flag.String("db", "", "override board database path (optional)")
	ephemeral := flag.Bool("ephemeral", false, "keep the board in memory only")
	dump := flag.Bool("dump", false, "print the saved board as YAML and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		DBPath:     *dbPath,
		Ephemeral:  *ephemeral,
		Dump:       *dump,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "tzboard: %v\n", err)
		return 1
	}
	return 0
}
