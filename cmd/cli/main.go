package main

import (
	"context"
	"log"
	"os"

	"github.com/Venkatesh1410/smartbill/internal/buildinfo"
	"github.com/Venkatesh1410/smartbill/internal/client/cli"
	"github.com/Venkatesh1410/smartbill/internal/client/config"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
