package presenter

// Loop drives the periodic redraw of the crop session.
//
// The windowing collaborator owns the event loop; once per tick this
// re-renders the overlay unconditionally and invokes a scheduler
// callback to arm the next tick. The zero value is usable (methods are
// nil-safe).
type Loop struct {
	Crop     *CropPresenter
	Schedule func()
}

func NewLoop(crop *CropPresenter, schedule func()) *Loop {
	return &Loop{Crop: crop, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Crop != nil {
		l.Crop.Render()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
