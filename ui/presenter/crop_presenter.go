package presenter

import (
	"errors"
	"image"
	"log/slog"

	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/domain/selection"
	"github.com/soocke/crop-tool-go/ui/model"
	"github.com/soocke/crop-tool-go/ui/overlay"
)

// OverlayView renders a frame's overlay and shows status text. The
// concrete view owns the pixels; the presenter only hands it the plan.
type OverlayView interface {
	RenderOverlay(plan overlay.DrawPlan)
	SetStatus(text string)
}

// CommitterContract narrows what the presenter needs from the crop layer.
type CommitterContract interface {
	Commit(points []image.Point, scale float64, src image.Image, srcPath string) (crop.Result, error)
}

// CropPresenter is the event dispatcher of an interactive crop session:
// it receives pointer and key events from the windowing layer, drives
// the selection state, and triggers the committer on confirm. Every
// event that changes state pushes a redraw before returning.
type CropPresenter struct {
	sel       *selection.Selection
	committer CommitterContract
	session   *model.SessionModel
	view      OverlayView
	logger    *slog.Logger

	src        image.Image
	srcPath    string
	scale      float64
	grabRadius int

	// terminate closes the window; installed by the app wiring.
	terminate func()

	// pending derived-state changes queued by the selection listener,
	// flushed to the status line on the next render.
	pending []selection.State
	latest  selection.State
	sticky  string // error text shown until the next state change
}

// NewCropPresenter wires the dispatcher to its collaborators. The
// terminate callback ends the session on confirm success or quit.
func NewCropPresenter(sel *selection.Selection, committer CommitterContract, session *model.SessionModel,
	view OverlayView, src image.Image, srcPath string, scale float64, grabRadius int,
	terminate func(), logger *slog.Logger) *CropPresenter {
	p := &CropPresenter{
		sel:        sel,
		committer:  committer,
		session:    session,
		view:       view,
		logger:     logger,
		src:        src,
		srcPath:    srcPath,
		scale:      scale,
		grabRadius: grabRadius,
		terminate:  terminate,
		latest:     selection.StateIdle,
	}
	if sel != nil {
		sel.AddListener(p.onState)
	}
	return p
}

// PointerDown places a new corner while fewer than two exist, otherwise
// grabs the handle under the pointer if one is close enough.
func (p *CropPresenter) PointerDown(x, y int) {
	if p == nil || p.sel == nil {
		return
	}
	pt := image.Pt(x, y)
	if p.sel.State() != selection.StateComplete {
		p.sel.AddPoint(pt)
		p.Render()
		return
	}
	if idx, ok := p.sel.FindHandleNear(pt, p.grabRadius); ok {
		p.sel.Grab(idx)
		p.Render()
	}
}

// PointerMove drags the active handle; motion with nothing grabbed is
// ignored.
func (p *CropPresenter) PointerMove(x, y int) {
	if p == nil || p.sel == nil {
		return
	}
	if p.sel.MoveActive(image.Pt(x, y)) {
		p.Render()
	}
}

// PointerUp drops the grabbed handle. Safe to call when not dragging.
func (p *CropPresenter) PointerUp(x, y int) {
	if p == nil || p.sel == nil {
		return
	}
	p.sel.Release()
	p.Render()
}

// KeyReset discards the selection.
func (p *CropPresenter) KeyReset() {
	if p == nil || p.sel == nil {
		return
	}
	p.sel.Reset()
	if p.logger != nil {
		p.logger.Info("selection reset")
	}
	p.Render()
}

// KeyConfirm commits the selection. On success the session terminates;
// any failure is reported on the status line and the selection stays
// untouched so the user can adjust and retry. Confirming mid-drag is
// allowed and freezes the in-progress handle position.
func (p *CropPresenter) KeyConfirm() {
	if p == nil || p.sel == nil || p.committer == nil {
		return
	}
	res, err := p.committer.Commit(p.sel.Points(), p.scale, p.src, p.srcPath)
	if err != nil {
		switch {
		case errors.Is(err, crop.ErrIncompleteSelection):
			p.sticky = "Need two corners before saving. Click to place them."
		case errors.Is(err, crop.ErrDegenerateRegion):
			p.sticky = "Selected region has no area. Drag a corner apart and retry."
		default:
			p.sticky = "Saving failed: " + err.Error()
		}
		if p.logger != nil {
			p.logger.Warn("crop commit rejected", "error", err)
		}
		p.Render()
		return
	}
	if p.session != nil {
		p.session.MarkSaved(res.Path)
	}
	p.end()
}

// KeyQuit ends the session without writing anything.
func (p *CropPresenter) KeyQuit() {
	if p == nil {
		return
	}
	if p.session != nil {
		p.session.MarkQuit()
	}
	if p.logger != nil {
		p.logger.Info("quitting without cropping")
	}
	p.end()
}

// Render recomputes the overlay plan and pushes it with the current
// status text. Called on each state-changing event and once per redraw
// tick by the loop.
func (p *CropPresenter) Render() {
	if p == nil || p.view == nil {
		return
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		if last != p.latest {
			p.latest = last
			p.sticky = "" // state changed, stale error text is misleading
		}
	}
	status := p.sticky
	if status == "" {
		status = instructionFor(p.latest)
	}
	p.view.SetStatus(status)
	p.view.RenderOverlay(overlay.Build(p.sel))
}

// onState queues a transition from the selection listener; Render
// flushes the most recent one.
func (p *CropPresenter) onState(prev, next selection.State) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

func (p *CropPresenter) end() {
	if p.terminate != nil {
		p.terminate()
	}
}

func instructionFor(s selection.State) string {
	switch s {
	case selection.StatePartial:
		return "Click to place the opposite corner."
	case selection.StateComplete:
		return "Drag a corner to adjust. c/Enter saves, r resets, q quits."
	default:
		return "Click two points to mark opposite corners of the crop region."
	}
}
