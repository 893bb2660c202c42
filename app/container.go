package app

import (
	"image"
	"log/slog"

	"github.com/soocke/crop-tool-go/config"
	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/domain/selection"
	"github.com/soocke/crop-tool-go/ui/model"
	"github.com/soocke/crop-tool-go/ui/presenter"
	"github.com/soocke/crop-tool-go/ui/view"
)

// AppContainer assembles the session state, domain services, presenter
// and view of one interactive crop session. The name stays clear of the
// tk9.0 Container layout type dot-imported elsewhere in this package.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Session   *model.SessionModel
	Selection *selection.Selection
	Committer *crop.Committer
	View      *view.CropView
	Crop      *presenter.CropPresenter
	Loop      *presenter.Loop
}

// BuildContainer constructs all components for a session over the given
// source raster and its preview. terminate is invoked by the presenter
// to close the window on confirm success or quit.
func BuildContainer(cfg *config.Config, logger *slog.Logger, src image.Image, srcPath string,
	scale float64, preview *image.NRGBA, terminate func()) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	pb := preview.Bounds()
	c.Session = model.NewSessionModel()
	c.Selection = selection.New(pb.Dx(), pb.Dy(), logger)
	c.Committer = crop.NewCommitter(cfg.JPEGQuality, nil, logger)
	c.View = view.NewCropView(preview, cfg.HandleRadius, logger)
	c.Crop = presenter.NewCropPresenter(c.Selection, c.Committer, c.Session, c.View,
		src, srcPath, scale, cfg.GrabRadius(), terminate, logger)
	c.Loop = presenter.NewLoop(c.Crop, nil) // schedule wired by the app wrapper
	return c
}
