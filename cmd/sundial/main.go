package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrissnell/sundial/internal/constants"
	"github.com/chrissnell/sundial/internal/log"
	"github.com/chrissnell/sundial/internal/planner"
	"github.com/chrissnell/sundial/internal/report"
	"github.com/chrissnell/sundial/pkg/config"
	"github.com/chrissnell/sundial/pkg/render"
	"github.com/chrissnell/sundial/pkg/timezone"
)

func main() {
	latFlag := flag.String("lat", "", "Latitude in decimal degrees; prompts when -lat and -lon are not both given")
	lonFlag := flag.String("lon", "", "Longitude in decimal degrees, east positive")
	day := flag.Int("day", 0, "Day of year (1-366) to compute for; defaults to today")
	utcOffset := flag.String("utc-offset", "", "UTC offset in hours; defaults to the timezone at the coordinates")
	cfgFile := flag.String("config", "", "Optional YAML configuration file for render settings")
	outDir := flag.String("out", "", "Directory for the dial image and info file")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sundial %s\n", constants.Version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*latFlag, *lonFlag, *day, *utcOffset, *cfgFile, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(latFlag, lonFlag string, day int, utcOffset, cfgFile, outDir string) error {
	provider := config.NewYAMLProvider(cfgFile)
	defer provider.Close()

	renderCfg, err := provider.GetRender()
	if err != nil {
		return err
	}
	if outDir != "" {
		renderCfg.OutputDir = outDir
	}

	req := planner.Request{DayOfYear: day}
	if latFlag != "" && lonFlag != "" {
		if req.Latitude, req.Longitude, err = ParseCoordinates(latFlag + " " + lonFlag); err != nil {
			return err
		}
	} else if req.Latitude, req.Longitude, err = promptCoordinates(os.Stdin, os.Stdout); err != nil {
		return err
	}

	if req.UTCOffset, err = resolveUTCOffset(utcOffset, provider); err != nil {
		return err
	}

	p := planner.New(timezone.NewLatLong(), nil, log.GetSugaredLogger())
	plan, err := p.Plan(req)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(renderCfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	imagePath := filepath.Join(renderCfg.OutputDir, renderCfg.ImageFile)
	opts := render.Options{Radius: renderCfg.Radius, Margin: renderCfg.Margin}
	if err := render.RenderFile(imagePath, plan.Result, opts); err != nil {
		return err
	}

	infoPath := filepath.Join(renderCfg.OutputDir, renderCfg.InfoFile)
	if err := report.WriteInfoFile(infoPath, plan); err != nil {
		return err
	}

	log.Debugw("wrote dial", "image", imagePath, "info", infoPath, "id", plan.ID)

	fmt.Println()
	fmt.Print(plan.Text())
	fmt.Printf("\nSundial template saved to %s\nDial details saved to %s\n", imagePath, infoPath)
	return nil
}
