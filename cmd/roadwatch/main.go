package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/roadwatch/roadwatch/internal/roadwatch/app"
	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "path to a TOML config file (default $ROADWATCH_CONFIG)")
		seedPath   = pflag.String("seed", "", "YAML seed file applied at startup (default $SEED_FILE)")
		syncOnce   = pflag.Bool("sync-once", false, "pull once from the document store and exit")
		version    = pflag.BoolP("version", "v", false, "print the version and exit")
	)
	pflag.Parse()

	if *version {
		fmt.Println(app.BuildVersion)
		return
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *seedPath != "" {
		cfg.SeedFile = *seedPath
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if *syncOnce {
		res, err := application.SyncOnce(context.Background())
		fmt.Fprintf(os.Stdout, "signalements: %+v\ntravaux: %+v\n", res.Reports, res.Works)
		if err != nil {
			log.Fatalf("sync failed: %v", err)
		}
		return
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
