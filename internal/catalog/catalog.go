package catalog

import (
	"net/url"
	"strings"
	"unicode"

	"fit-planner/internal/model"
)

// Catalog is a read-only exercise lookup. It is built once and never mutated.
type Catalog struct {
	byID  map[string]model.Exercise
	order []string
}

var std = New(exercises())

// Default returns the built-in exercise catalog.
func Default() *Catalog {
	return std
}

// New builds a catalog preserving the given order. Later duplicates replace earlier ones.
func New(list []model.Exercise) *Catalog {
	c := &Catalog{byID: make(map[string]model.Exercise, len(list))}
	for _, ex := range list {
		if _, ok := c.byID[ex.ID]; !ok {
			c.order = append(c.order, ex.ID)
		}
		c.byID[ex.ID] = ex.Clone()
	}
	return c
}

// Lookup never fails: unknown ids resolve to a generic placeholder.
func (c *Catalog) Lookup(id string) model.Exercise {
	if ex, ok := c.byID[id]; ok {
		return ex.Clone()
	}
	return Placeholder(id)
}

// Has reports whether id is a real catalog entry.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every exercise in catalog order.
func (c *Catalog) All() []model.Exercise {
	out := make([]model.Exercise, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].Clone())
	}
	return out
}

// Search filters the catalog by a case-insensitive name substring, a workout
// mode and a muscle group. Empty arguments match everything.
func (c *Catalog) Search(query string, mode model.WorkoutMode, muscle string) []model.Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []model.Exercise
	for _, ex := range c.All() {
		if query != "" && !strings.Contains(strings.ToLower(ex.Name), query) {
			continue
		}
		if mode != "" && !ex.SupportsMode(mode) {
			continue
		}
		if muscle != "" && !hasMuscle(ex, muscle) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// Muscles lists every muscle group in first-seen catalog order.
func (c *Catalog) Muscles() []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range c.order {
		for _, m := range c.byID[id].MuscleGroup {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

func hasMuscle(ex model.Exercise, muscle string) bool {
	for _, m := range ex.MuscleGroup {
		if strings.EqualFold(m, muscle) {
			return true
		}
	}
	return false
}

// Alternatives lists exercises sharing the movement pattern of ex that are valid
// for mode, excluding ex itself. Order follows the catalog.
func (c *Catalog) Alternatives(ex model.Exercise, mode model.WorkoutMode) []model.Exercise {
	var out []model.Exercise
	for _, id := range c.order {
		candidate := c.byID[id]
		if candidate.ID == ex.ID || candidate.MovementPattern != ex.MovementPattern {
			continue
		}
		if !candidate.SupportsMode(mode) {
			continue
		}
		out = append(out, candidate.Clone())
	}
	return out
}

// Placeholder synthesizes a generic exercise for an unrecognized id.
func Placeholder(id string) model.Exercise {
	return model.Exercise{
		ID:                  id,
		Name:                Humanize(id),
		Mode:                []model.WorkoutMode{model.ModeHome, model.ModeGym},
		MuscleGroup:         []string{"General"},
		MovementPattern:     model.PatternOther,
		Level:               model.LevelBeginner,
		DefaultPrescription: "3 sets x 10 reps",
		FormSteps:           []string{"Follow standard form."},
		CommonMistakes:      []string{},
		SafetyNotes:         []string{},
		VideoLinks: []model.VideoLink{
			{Title: "Search YouTube", URL: searchLink(id + " exercise")},
		},
	}
}

// Humanize turns "farmer-carry" into "Farmer Carry".
func Humanize(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func searchLink(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}
