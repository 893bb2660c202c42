package app

import (
	"log/slog"
	"path/filepath"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/crop-tool-go/config"
	"github.com/soocke/crop-tool-go/debug"
	"github.com/soocke/crop-tool-go/domain/geom"
	"github.com/soocke/crop-tool-go/ui/images"
	"github.com/soocke/crop-tool-go/ui/view"
)

type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	container *AppContainer
	tick      time.Duration
	afterID   string
}

// Run executes one interactive crop session over the image at imagePath
// and returns the process exit code: 0 for a committed crop or a clean
// quit, 1 when the source image cannot be loaded. The window surface is
// released on every exit path.
func Run(imagePath string, cfg *config.Config, logger *slog.Logger) int {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	_ = cfg.Validate()

	src, err := images.LoadSource(imagePath)
	if err != nil {
		// Fatal: reported before any window is shown.
		if logger != nil {
			logger.Error("unable to load image", "path", imagePath, "error", err)
		}
		return 1
	}
	b := src.Bounds()
	scale := geom.PreviewScale(b.Dx(), b.Dy(), cfg.MaxPreviewWidth, cfg.MaxPreviewHeight)
	preview := images.BuildPreview(src, scale)

	if cfg.Debug {
		debug.StartRuntimeLogger(2*time.Second, logger)
	}

	a := &app{cfg: cfg, logger: logger, tick: time.Duration(cfg.TickMillis) * time.Millisecond}
	a.container = BuildContainer(cfg, logger, src, imagePath, scale, preview, a.exitHandler)
	a.container.Loop.Schedule = a.scheduleTick

	c := a.container
	c.View.Build(filepath.Base(imagePath), view.Handlers{
		PointerDown: c.Crop.PointerDown,
		PointerMove: c.Crop.PointerMove,
		PointerUp:   c.Crop.PointerUp,
		Reset:       c.Crop.KeyReset,
		Confirm:     c.Crop.KeyConfirm,
		Quit:        c.Crop.KeyQuit,
	})
	c.View.Place()
	c.Session.Begin(time.Now())
	if logger != nil {
		pb := preview.Bounds()
		logger.Info("session started",
			"path", imagePath,
			"source_width", b.Dx(), "source_height", b.Dy(),
			"preview_width", pb.Dx(), "preview_height", pb.Dy(),
			"scale", scale,
		)
	}

	a.scheduleTick()
	c.View.Wait()

	if logger != nil {
		logger.Info("session ended",
			"outcome", c.Session.Outcome().String(),
			"path", c.Session.SavedPath(),
			"duration", c.Session.Duration(time.Now()).Round(time.Millisecond),
		)
	}
	// Both a committed crop and a deliberate quit are clean exits.
	return 0
}

// exitHandler cancels the pending tick and destroys the window. It
// serves the presenter's terminate callback and WM_DELETE_WINDOW alike.
func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.container.View.Close()
}

// scheduleTick arms the next redraw using TclAfter to stay on Tk's
// event loop thread.
func (a *app) scheduleTick() {
	a.afterID = TclAfter(a.tick, func() { a.container.Loop.Tick() })
}
