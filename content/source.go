package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/voidlight/starfolio/constants"
)

//go:embed schema.json
var schemaJSON string

//go:embed default_cv.json
var defaultCV []byte

// Source holds the loaded profile and serves display fragments.
type Source struct {
	profile Profile
	byID    map[string]*Section
}

// Load reads the profile from path, or the embedded default when path
// is empty. The document is validated against the embedded schema; a
// file that fails to parse or validate falls back to the default.
func Load(path string) (*Source, error) {
	var profile Profile
	var err error
	if strings.TrimSpace(path) == "" {
		profile, err = parse(defaultCV)
		if err != nil {
			return nil, err
		}
	} else {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("content: %w", readErr)
		}
		profile, err = parse(data)
		if err != nil {
			log.Printf("Content file %s rejected (%v), using embedded default", path, err)
			profile, err = parse(defaultCV)
			if err != nil {
				return nil, err
			}
		}
	}

	src := &Source{
		profile: profile,
		byID:    make(map[string]*Section, len(profile.Sections)),
	}
	for i := range src.profile.Sections {
		s := &src.profile.Sections[i]
		src.byID[s.ID] = s
	}
	log.Printf("Loaded profile %q with %d sections", profile.Callsign, len(profile.Sections))
	return src, nil
}

func parse(data []byte) (Profile, error) {
	schema, err := jsonschema.CompileString("cv.schema.json", schemaJSON)
	if err != nil {
		return Profile{}, fmt.Errorf("content schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Profile{}, fmt.Errorf("content parse: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return Profile{}, fmt.Errorf("content validate: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("content decode: %w", err)
	}
	return profile, nil
}

// Profile returns the loaded document.
func (s *Source) Profile() Profile {
	return s.profile
}

// Sections returns the destinations in document order.
func (s *Source) Sections() []Section {
	return s.profile.Sections
}

// Section returns the section with the given id.
func (s *Source) Section(id string) (*Section, bool) {
	sec, ok := s.byID[id]
	return sec, ok
}

// ContentFor returns the display fragment for a destination. Unknown
// ids yield the uncharted-sector fallback instead of an error so the
// arrival overlay always has something to show.
func (s *Source) ContentFor(id string) Fragment {
	sec, ok := s.byID[id]
	if !ok {
		log.Printf("No section %q, serving uncharted fallback", id)
		return Fragment{
			Title: "SECTOR UNCHARTED",
			Lines: []string{
				"Navigation database has no record of this sector.",
				"",
				"Return to orbit and choose a charted destination.",
			},
		}
	}
	return Fragment{
		Title: sec.Title,
		Lines: wrapLines(sec.Lines, constants.ContentWrapWidth),
	}
}

// wrapLines word-wraps each line to the given display width. Empty
// lines are preserved as paragraph breaks.
func wrapLines(lines []string, width int) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	var out []string
	var cur strings.Builder
	curWidth := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if curWidth > 0 && curWidth+1+ww > width {
			out = append(out, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(w)
		curWidth += ww
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
