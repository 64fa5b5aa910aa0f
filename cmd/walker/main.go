package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/go-walker/pkg/config"
	"github.com/leterax/go-walker/pkg/render"
	"github.com/sirupsen/logrus"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a YAML config file (empty for defaults)")
	unlocked := flag.Bool("unlocked", false, "Start with the pointer free so the mouse drives the on-screen controls")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{ForceColors: true}
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to parse log level: %v", err)
	}
	logger.Level = level

	logger.Info("Starting Go-Walker...")

	// Initialize the renderer
	renderer, err := render.NewRenderer(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.SetPointerLocked(!*unlocked)
	renderer.Run()
}
