package vellum

// Screen indicates which screen is currently displayed
type Screen int

const (
	// SearchScreen shows the query line and result table
	SearchScreen Screen = iota
	// FilterScreen overlays the chip-editing dialog
	FilterScreen
)
