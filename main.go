package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/crop-tool-go/app"
	"github.com/soocke/crop-tool-go/config"
)

// configPath is looked up next to the working directory; a missing file
// means built-in defaults.
const configPath = "crop-tool.json"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: crop-tool <image-path>")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "error", err)
	}

	os.Exit(app.Run(os.Args[1], cfg, logger))
}
