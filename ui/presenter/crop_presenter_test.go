package presenter

import (
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/domain/selection"
	"github.com/soocke/crop-tool-go/ui/model"
	"github.com/soocke/crop-tool-go/ui/overlay"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeView records rendered plans and status lines.
type fakeView struct {
	plans    []overlay.DrawPlan
	statuses []string
}

func (v *fakeView) RenderOverlay(plan overlay.DrawPlan) { v.plans = append(v.plans, plan) }
func (v *fakeView) SetStatus(text string)               { v.statuses = append(v.statuses, text) }

func (v *fakeView) lastStatus() string {
	if len(v.statuses) == 0 {
		return ""
	}
	return v.statuses[len(v.statuses)-1]
}

type harness struct {
	sel        *selection.Selection
	view       *fakeView
	session    *model.SessionModel
	enc        *captureEncoder
	presenter  *CropPresenter
	terminated bool
}

type captureEncoder struct {
	calls int
	path  string
	err   error
}

func (e *captureEncoder) encode(img image.Image, path string) error {
	e.calls++
	if e.err != nil {
		return e.err
	}
	e.path = path
	return nil
}

// newHarness wires a presenter over a 1200x900 preview of a 4000x3000
// source at scale 0.3, with the filesystem faked out.
func newHarness() *harness {
	h := &harness{
		sel:     selection.New(1200, 900, discardLogger),
		view:    &fakeView{},
		session: model.NewSessionModel(),
		enc:     &captureEncoder{},
	}
	committer := crop.NewCommitter(95, h.enc.encode, discardLogger)
	src := image.NewNRGBA(image.Rect(0, 0, 4000, 3000))
	h.presenter = NewCropPresenter(h.sel, committer, h.session, h.view,
		src, "/photos/photo.jpg", 0.3, 16, func() { h.terminated = true }, discardLogger)
	return h
}

func TestPresenter_ClickDragReleaseAdjustsCorner(t *testing.T) {
	h := newHarness()
	p := h.presenter
	p.PointerDown(100, 100)
	p.PointerUp(100, 100)
	p.PointerDown(500, 400)
	// Button still held: motion keeps moving the just-placed corner.
	p.PointerMove(520, 410)
	p.PointerUp(520, 410)

	pts := h.sel.Points()
	if pts[1] != image.Pt(520, 410) {
		t.Fatalf("second corner %v, want (520,410)", pts[1])
	}

	// Grab the first corner and nudge it.
	p.PointerDown(102, 98) // within grab radius of (100,100)
	p.PointerMove(90, 95)
	p.PointerUp(90, 95)
	if got := h.sel.Points()[0]; got != image.Pt(90, 95) {
		t.Fatalf("first corner %v, want (90,95)", got)
	}

	// A press far from both corners grabs nothing and moves nothing.
	p.PointerDown(600, 600)
	p.PointerMove(700, 700)
	p.PointerUp(700, 700)
	pts = h.sel.Points()
	if pts[0] != image.Pt(90, 95) || pts[1] != image.Pt(520, 410) {
		t.Fatalf("far press moved corners: %v", pts)
	}
}

func TestPresenter_ConfirmWithOneCornerKeepsSession(t *testing.T) {
	h := newHarness()
	h.presenter.PointerDown(100, 100)
	h.presenter.PointerUp(100, 100)
	h.presenter.KeyConfirm()

	if h.terminated {
		t.Fatal("incomplete confirm must not end the session")
	}
	if h.enc.calls != 0 {
		t.Fatal("no file may be written for an incomplete selection")
	}
	if h.sel.State() != selection.StatePartial {
		t.Fatalf("selection state %v, want partial", h.sel.State())
	}
	if !strings.Contains(h.view.lastStatus(), "two corners") {
		t.Fatalf("status %q does not prompt for corners", h.view.lastStatus())
	}
}

func TestPresenter_ConfirmDegenerateKeepsSession(t *testing.T) {
	h := newHarness()
	h.presenter.PointerDown(300, 300)
	h.presenter.PointerUp(300, 300)
	h.presenter.PointerDown(300, 300)
	h.presenter.PointerUp(300, 300)
	h.presenter.KeyConfirm()

	if h.terminated || h.enc.calls != 0 {
		t.Fatal("degenerate confirm must neither write nor terminate")
	}
	if h.sel.State() != selection.StateComplete {
		t.Fatalf("selection state %v, want complete for adjustment", h.sel.State())
	}
	if !strings.Contains(h.view.lastStatus(), "no area") {
		t.Fatalf("status %q does not explain the empty region", h.view.lastStatus())
	}
}

func TestPresenter_ConfirmWritesAndTerminates(t *testing.T) {
	h := newHarness()
	h.presenter.PointerDown(100, 100)
	h.presenter.PointerUp(100, 100)
	h.presenter.PointerDown(500, 400)
	h.presenter.PointerUp(500, 400)
	h.presenter.KeyConfirm()

	if !h.terminated {
		t.Fatal("successful confirm should end the session")
	}
	if h.enc.calls != 1 || h.enc.path != "/photos/photo_cut.jpg" {
		t.Fatalf("encoder calls=%d path=%q", h.enc.calls, h.enc.path)
	}
	if h.session.Outcome() != model.OutcomeSaved {
		t.Fatalf("session outcome %v, want saved", h.session.Outcome())
	}
	if h.session.SavedPath() != "/photos/photo_cut.jpg" {
		t.Fatalf("saved path %q", h.session.SavedPath())
	}
}

func TestPresenter_WriteFailureAllowsRetry(t *testing.T) {
	h := newHarness()
	h.enc.err = errors.New("disk full")
	h.presenter.PointerDown(100, 100)
	h.presenter.PointerUp(100, 100)
	h.presenter.PointerDown(500, 400)
	h.presenter.PointerUp(500, 400)
	h.presenter.KeyConfirm()

	if h.terminated {
		t.Fatal("failed write must keep the session alive")
	}
	if h.session.Outcome() != model.OutcomeNone {
		t.Fatalf("outcome %v after failed write", h.session.Outcome())
	}

	// Retry succeeds once the encoder recovers.
	h.enc.err = nil
	h.presenter.KeyConfirm()
	if !h.terminated || h.session.Outcome() != model.OutcomeSaved {
		t.Fatal("retry after write failure should succeed")
	}
}

func TestPresenter_QuitDiscardsSelection(t *testing.T) {
	h := newHarness()
	h.presenter.PointerDown(100, 100)
	h.presenter.PointerUp(100, 100)
	h.presenter.KeyQuit()

	if !h.terminated {
		t.Fatal("quit should end the session")
	}
	if h.enc.calls != 0 {
		t.Fatal("quit must not write a file")
	}
	if h.session.Outcome() != model.OutcomeQuit {
		t.Fatalf("outcome %v, want quit", h.session.Outcome())
	}
}

func TestPresenter_ConfirmMidDragUsesFrozenPosition(t *testing.T) {
	h := newHarness()
	p := h.presenter
	p.PointerDown(100, 100)
	p.PointerUp(100, 100)
	p.PointerDown(500, 400) // still dragging the second corner
	p.PointerMove(510, 390)
	p.KeyConfirm()

	if !h.terminated || h.enc.calls != 1 {
		t.Fatal("mid-drag confirm should commit")
	}
}

func TestPresenter_ResetReturnsToIdleInstructions(t *testing.T) {
	h := newHarness()
	h.presenter.PointerDown(100, 100)
	h.presenter.PointerUp(100, 100)
	h.presenter.KeyReset()
	if h.sel.State() != selection.StateIdle {
		t.Fatalf("state %v after reset", h.sel.State())
	}
	if !strings.Contains(h.view.lastStatus(), "two points") {
		t.Fatalf("status %q after reset", h.view.lastStatus())
	}
	if plan := h.view.plans[len(h.view.plans)-1]; len(plan.Markers) != 0 || plan.HasRect {
		t.Fatalf("reset still renders overlay %+v", plan)
	}
}

func TestLoop_TickRendersAndReschedules(t *testing.T) {
	h := newHarness()
	scheduled := 0
	loop := NewLoop(h.presenter, func() { scheduled++ })
	before := len(h.view.plans)
	loop.Tick()
	loop.Tick()
	if scheduled != 2 {
		t.Fatalf("schedule called %d times", scheduled)
	}
	if len(h.view.plans) != before+2 {
		t.Fatalf("tick did not render: %d plans", len(h.view.plans))
	}
	var nilLoop *Loop
	nilLoop.Tick() // nil-safe
}
