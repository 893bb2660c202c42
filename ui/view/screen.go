package view

import (
	"github.com/vova616/screenshot"
)

// ScreenSize reports the primary display dimensions. The capability is
// optional: on platforms where the query fails the second return is
// false and callers skip window centering.
func ScreenSize() (w, h int, ok bool) {
	defer func() {
		if recover() != nil {
			w, h, ok = 0, 0, false
		}
	}()
	r, err := screenshot.ScreenRect()
	if err != nil || r.Dx() <= 0 || r.Dy() <= 0 {
		return 0, 0, false
	}
	return r.Dx(), r.Dy(), true
}
