package domain

// Screen identifies what the host is showing.
// It is either ScreenSelection or the ID of the catalog being answered.
type Screen string

// ScreenSelection is the start screen where the user picks a test.
const ScreenSelection Screen = "selection"

// TestScreen returns the screen of the given catalog.
func TestScreen(catalogID string) Screen {
	return Screen(catalogID)
}

// IsSelection reports whether s is the selection screen.
// The zero value counts as the selection screen.
func (s Screen) IsSelection() bool {
	return s == "" || s == ScreenSelection
}

// CatalogID returns the catalog shown on a test screen, or "" on the selection screen.
func (s Screen) CatalogID() string {
	if s.IsSelection() {
		return ""
	}
	return string(s)
}
