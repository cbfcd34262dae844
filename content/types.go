package content

// Profile is the full CV document backing the site.
type Profile struct {
	Callsign string    `json:"callsign"`
	Name     string    `json:"name"`
	Tagline  string    `json:"tagline"`
	Sections []Section `json:"sections"`
}

// Section is one destination planet and the CV content behind it.
type Section struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Planet Planet   `json:"planet"`
	Lines  []string `json:"lines"`
}

// Planet describes the orbital body rendered for a section.
type Planet struct {
	Name string  `json:"name"`
	Hue  float64 `json:"hue"` // 0..360, drives the body's color ramp
}

// Fragment is display-ready content for the arrival overlay.
type Fragment struct {
	Title string
	Lines []string
}
