package view

import (
	"fmt"
	"image"
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/crop-tool-go/ui/images"
	"github.com/soocke/crop-tool-go/ui/overlay"
	"github.com/soocke/crop-tool-go/ui/theme"
)

// Handlers carries the presenter callbacks bound to window input events.
// The Tk event loop delivers one event at a time on a single thread.
type Handlers struct {
	PointerDown func(x, y int)
	PointerMove func(x, y int)
	PointerUp   func(x, y int)
	Reset       func()
	Confirm     func()
	Quit        func()
}

// CropView owns the session window: a photo label showing the preview
// with the selection overlay composited in, and a status line below it.
// It performs all pixel drawing; presenters only hand it draw plans.
type CropView struct {
	logger       *slog.Logger
	preview      *image.NRGBA // base preview raster, never drawn on
	handleRadius int

	previewLbl *LabelWidget
	statusLbl  *LabelWidget
	prevPhoto  *Img // last Tk photo, disposed before replacement
	lastStatus string
}

// NewCropView returns a view over the given preview raster.
func NewCropView(preview *image.NRGBA, handleRadius int, logger *slog.Logger) *CropView {
	return &CropView{logger: logger, preview: preview, handleRadius: handleRadius}
}

// Build constructs the window layout, sizes it to the preview and binds
// the input events. The window close button acts like a quit key.
func (v *CropView) Build(title string, h Handlers) {
	if v == nil {
		return
	}
	theme.InitStyles()
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", h.Quit)

	v.prevPhoto = NewPhoto(Data(images.EncodePNG(v.preview)))
	v.previewLbl = Label(Image(v.prevPhoto), Borderwidth(1), Relief("sunken"))
	Grid(v.previewLbl, Row(0), Column(0), Padx("0.4m"), Pady("0.4m"))

	v.statusLbl = Label(Txt(""), Style(theme.StyleStatusLabel), Borderwidth(1), Relief("ridge"))
	Grid(v.statusLbl, Row(1), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	if h.PointerDown != nil {
		Bind(v.previewLbl, "<ButtonPress-1>", Command(func(e *Event) { h.PointerDown(e.X, e.Y) }))
	}
	if h.PointerMove != nil {
		Bind(v.previewLbl, "<B1-Motion>", Command(func(e *Event) { h.PointerMove(e.X, e.Y) }))
	}
	if h.PointerUp != nil {
		Bind(v.previewLbl, "<ButtonRelease-1>", Command(func(e *Event) { h.PointerUp(e.X, e.Y) }))
	}
	if h.Reset != nil {
		Bind(App, "<KeyPress-r>", Command(h.Reset))
	}
	if h.Confirm != nil {
		Bind(App, "<KeyPress-c>", Command(h.Confirm))
		Bind(App, "<Return>", Command(h.Confirm))
	}
	if h.Quit != nil {
		Bind(App, "<KeyPress-q>", Command(h.Quit))
		Bind(App, "<Escape>", Command(h.Quit))
	}
}

// Place sizes the window to the preview and centers it when the screen
// size is known; without screen metrics centering is skipped.
func (v *CropView) Place() {
	if v == nil {
		return
	}
	b := v.preview.Bounds()
	pw, ph := b.Dx(), b.Dy()
	if sw, sh, ok := ScreenSize(); ok {
		x := (sw - pw) / 2
		if x < 0 {
			x = 0
		}
		y := (sh - ph) / 2
		if y < 0 {
			y = 0
		}
		WmGeometry(App, fmt.Sprintf("+%d+%d", x, y))
		return
	}
	if v.logger != nil {
		v.logger.Debug("screen size unavailable, skipping window centering")
	}
}

// RenderOverlay composites the plan over the preview and swaps the Tk
// photo, disposing the previous one to avoid accumulating image data.
func (v *CropView) RenderOverlay(plan overlay.DrawPlan) {
	if v == nil || v.previewLbl == nil {
		return
	}
	frame := renderPlan(v.preview, plan, v.handleRadius)
	pngBytes := images.EncodePNG(frame)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.previewLbl.Configure(Image(newPhoto))
}

// SetStatus updates the status line, skipping no-op updates.
func (v *CropView) SetStatus(text string) {
	if v == nil || v.statusLbl == nil || text == v.lastStatus {
		return
	}
	v.lastStatus = text
	v.statusLbl.Configure(Txt(text))
}

// Wait blocks in the Tk event loop until the window is destroyed.
func (v *CropView) Wait() { App.Wait() }

// Close destroys the window; safe on every exit path.
func (v *CropView) Close() { Destroy(App) }
