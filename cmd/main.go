package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"sheet-detect/config"
	"sheet-detect/internal/container"
	"sheet-detect/internal/domain/port"
	"sheet-detect/internal/infrastructure/imageio"
	"sheet-detect/internal/infrastructure/pose"
	"sheet-detect/internal/infrastructure/vision"
)

func main() {
	var (
		help bool
		path string
		show bool
	)
	flag.BoolVar(&help, "help", false, "print this message")
	flag.BoolVar(&help, "h", false, "print this message (shorthand)")
	flag.StringVar(&path, "path", "", "path to input image (default: all *.jpg in the working directory)")
	flag.StringVar(&path, "p", "", "path to input image (shorthand)")
	flag.BoolVar(&show, "show", false, "flag for showing result images")
	flag.BoolVar(&show, "s", false, "flag for showing result images (shorthand)")
	flag.Parse()

	if help {
		flag.CommandLine.SetOutput(os.Stdout)
		flag.Usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	paths := []string{path}
	if path == "" {
		paths, err = imageio.Glob(".", imageio.DefaultPattern)
		if err != nil {
			log.Fatalf("Failed to list images: %v", err)
		}
	}

	// Окно вывода нужно только с флагом --show
	var renderer port.Renderer
	if show {
		w := vision.NewWindowRenderer(cfg.Renderer)
		defer w.Close()
		renderer = w
	}

	appContainer := container.New(
		cfg.Selector,
		imageio.NewLoader(cfg.MaxSide),
		vision.NewGoCVExtractor(cfg.Extractor),
		vision.NewApproximator(),
		pose.NewZeroEstimator(),
		renderer,
	)

	results, err := appContainer.DetectionService.ProcessAll(context.Background(), paths)
	for _, det := range results {
		fmt.Printf("%s: \n", det.Path)
		fmt.Print(det.Pose)
	}
	if err != nil {
		log.Fatalf("Detection error: %v", err)
	}
}
