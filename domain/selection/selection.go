package selection

import (
	"image"
	"log/slog"

	"github.com/soocke/crop-tool-go/domain/geom"
)

// Selection holds the crop corners under construction, in preview-space
// coordinates, together with the grab state of the handle being dragged.
// It is pure state plus transition logic; the event dispatcher drives it
// and the overlay is re-rendered from its accessors.
//
// Not concurrency-safe: the windowing collaborator delivers one event at
// a time on a single logical thread.
type Selection struct {
	width, height int // preview bounds points are clamped to
	points        []image.Point
	active        int // index of the grabbed handle, -1 when none
	dragging      bool
	logger        *slog.Logger
	listeners     []StateListener
}

// New returns an empty selection clamped to a previewW x previewH area.
func New(previewW, previewH int, logger *slog.Logger) *Selection {
	return &Selection{width: previewW, height: previewH, active: -1, logger: logger}
}

// AddListener registers a listener for derived-state changes.
func (s *Selection) AddListener(l StateListener) {
	if s == nil || l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// State derives the selection phase from the handle count.
func (s *Selection) State() State {
	switch {
	case s == nil || len(s.points) == 0:
		return StateIdle
	case len(s.points) == 1:
		return StatePartial
	default:
		return StateComplete
	}
}

// Points returns a copy of the handle points in insertion order.
func (s *Selection) Points() []image.Point {
	if s == nil {
		return nil
	}
	out := make([]image.Point, len(s.points))
	copy(out, s.points)
	return out
}

// ActiveIndex reports the grabbed handle, if any.
func (s *Selection) ActiveIndex() (int, bool) {
	if s == nil || s.active < 0 {
		return 0, false
	}
	return s.active, true
}

// Dragging reports whether pointer motion currently moves a handle.
func (s *Selection) Dragging() bool { return s != nil && s.dragging }

// AddPoint appends a clamped handle while fewer than MaxHandles exist.
// The new handle becomes active and dragging, so a press-drag-release
// gesture keeps moving the corner it just placed.
func (s *Selection) AddPoint(p image.Point) bool {
	if s == nil || len(s.points) >= MaxHandles {
		return false
	}
	prev := s.State()
	s.points = append(s.points, s.clamp(p))
	s.active = len(s.points) - 1
	s.dragging = true
	s.notify(prev)
	return true
}

// FindHandleNear returns the index of the first handle within radius of
// p, using a squared-distance test.
func (s *Selection) FindHandleNear(p image.Point, radius int) (int, bool) {
	if s == nil {
		return 0, false
	}
	for i, h := range s.points {
		dx, dy := p.X-h.X, p.Y-h.Y
		if dx*dx+dy*dy <= radius*radius {
			return i, true
		}
	}
	return 0, false
}

// Grab marks the handle at index as active and starts dragging it.
func (s *Selection) Grab(index int) bool {
	if s == nil || index < 0 || index >= len(s.points) {
		return false
	}
	s.active = index
	s.dragging = true
	return true
}

// MoveActive moves the grabbed handle to the clamped point. A move
// without an active drag is ignored.
func (s *Selection) MoveActive(p image.Point) bool {
	if s == nil || !s.dragging || s.active < 0 || s.active >= len(s.points) {
		return false
	}
	s.points[s.active] = s.clamp(p)
	return true
}

// Release drops the grabbed handle. Idempotent when nothing is dragged.
func (s *Selection) Release() {
	if s == nil {
		return
	}
	s.dragging = false
	s.active = -1
}

// Reset discards all handles and drag state. Valid from any state.
func (s *Selection) Reset() {
	if s == nil {
		return
	}
	prev := s.State()
	s.points = s.points[:0]
	s.dragging = false
	s.active = -1
	s.notify(prev)
}

func (s *Selection) clamp(p image.Point) image.Point {
	return geom.ClampToBounds(p, s.width, s.height)
}

func (s *Selection) notify(prev State) {
	next := s.State()
	if prev == next {
		return
	}
	if s.logger != nil {
		s.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range s.listeners {
		l(prev, next)
	}
}
