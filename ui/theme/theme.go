package theme

// Centralized styling for the crop tool UI: palette constants and
// InitStyles to configure the semantic widget styles used by the view.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff"
	ColorBorder    = "#d0d7de"
	ColorAccent    = "#10b981" // selection markers, confirmations
	ColorDanger    = "#dc2626" // recoverable error text
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Style names used with Style("status.TLabel") etc.
const (
	StyleStatusLabel = "status.TLabel"
)

// InitStyles applies the label styles of the status line.
func InitStyles() {
	StyleConfigure(StyleStatusLabel,
		Foreground(ColorText),
		Background(ColorBg),
		Padding("4p 2p"),
	)
}
