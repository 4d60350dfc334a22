package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrissnell/sundial/internal/app"
	"github.com/chrissnell/sundial/internal/constants"
	"github.com/chrissnell/sundial/internal/log"
	"github.com/chrissnell/sundial/pkg/config"
	"github.com/chrissnell/sundial/pkg/timezone"
)

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to the YAML configuration file; SUNDIAL_* environment variables override it")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sundial-server %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	filename, _ := filepath.Abs(*cfgFile)
	provider := config.NewYAMLProvider(filename)
	defer provider.Close()

	if _, err := provider.LoadConfig(); err != nil {
		log.Errorf("Failed to load configuration. Run with -h for help: %v", err)
		os.Exit(1)
	}

	application := app.New(provider, timezone.NewLatLong(), log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}
