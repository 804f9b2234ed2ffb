package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/arkadys/soundclub/internal/buildinfo"
	"github.com/arkadys/soundclub/internal/cli"
	"github.com/arkadys/soundclub/internal/config"
	"github.com/arkadys/soundclub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
