package constants

// Overlay Dimensions
const (
	// OverlayMaxWidth caps the content overlay width in cells
	OverlayMaxWidth = 76

	// OverlayMinWidth is the floor below which the overlay refuses to shrink
	OverlayMinWidth = 32

	// OverlayMarginY is the vertical margin above and below the overlay
	OverlayMarginY = 2

	// ContentWrapWidth is the column the content provider wraps body lines at
	ContentWrapWidth = 68
)

// Journal Overlay
const (
	// JournalVisibleEntries is how many recent log rows the overlay shows
	JournalVisibleEntries = 12
)

// Input
const (
	// ContentScrollPage is the line count PgUp/PgDn moves the content view
	ContentScrollPage = 8
)
