package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"volray/internal/logger"
	"volray/internal/util"
	"volray/pkg/config"
	"volray/pkg/render"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "raygen.yaml", "Path to configuration file (.yaml, .json or .toml)")
	target := flag.String("target", "", "Render target override: color or density")
	output := flag.String("out", "", "Preview output path, overrides preview.output")
	dump := flag.String("dump", "", "Write the effective configuration to this path")
	useGPU := flag.Bool("gpu", false, "Upload the configuration to an offscreen OpenGL 4.3 context and verify it")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if util.FileExists(*configPath) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = config.DefaultConfig()
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if !util.FileExists(*configPath) {
		logger.Warnf("Configuration %s not found, using defaults", *configPath)
	}

	if *target != "" {
		cfg.Target = *target
	}
	if *output != "" {
		cfg.Preview.Output = *output
	}

	rc, err := cfg.RenderConfiguration()
	if err != nil {
		logger.Fatalf("Invalid render configuration: %v", err)
	}
	logger.Debugf("Camera %+v, %d steps, box %v..%v, target %s",
		rc.Camera, rc.RmSettings.NSteps, rc.BoundingBox.Lo, rc.BoundingBox.Hi, cfg.Target)

	if *dump != "" {
		if err := config.SaveConfig(cfg, *dump); err != nil {
			logger.Fatalf("Failed to write configuration: %v", err)
		}
		logger.Infof("Configuration written to %s", *dump)
	}

	if *useGPU {
		if err := uploadToGPU(rc, logger); err != nil {
			logger.Fatalf("GPU upload failed: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	img, err := render.Preview(ctx, rc, cfg.Preview.Width, cfg.Preview.Height, cfg.Preview.Workers)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Preview interrupted")
			return
		}
		logger.Fatalf("Preview failed: %v", err)
	}
	util.TimeTrack(start, "Preview", logger.Debugf)

	if err := render.WritePNG(cfg.Preview.Output, img); err != nil {
		logger.Fatalf("Failed to write preview: %v", err)
	}
	logger.Infof("Preview %dx%d (%s) written to %s",
		cfg.Preview.Width, cfg.Preview.Height, cfg.Target, cfg.Preview.Output)
}

func newLogger(cfg config.LogConfig) (*logger.Logger, error) {
	if cfg.File != "" {
		return logger.NewMultiLogger(cfg.Level, cfg.File)
	}
	return logger.NewLogger(cfg.Level), nil
}
