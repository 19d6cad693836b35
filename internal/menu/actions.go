package menu

import (
	"strings"

	"countrytable/internal/countries"
	"countrytable/internal/query"
)

// Action is one entry of the fixed menu surface: exactly one query, one
// render, one caption.
type Action struct {
	ID      string
	Label   string
	Caption string
	Query   func(e *query.Engine) ([]query.ProjectedCountry, error)
}

// DefaultActionID is what the bare table page shows before any selection.
const DefaultActionID = "language/english"

// Actions returns the complete menu surface in display order: one action
// per supported language, two population brackets, two continent+area
// combinations.
func Actions() []Action {
	acts := make([]Action, 0, len(countries.SupportedLanguages())+4)

	for _, label := range countries.SupportedLanguages() {
		label := label
		acts = append(acts, Action{
			ID:      "language/" + strings.ToLower(label),
			Label:   label,
			Caption: "Country names in " + label,
			Query: func(e *query.Engine) ([]query.ProjectedCountry, error) {
				return e.ByLanguage(label)
			},
		})
	}

	acts = append(acts,
		Action{
			ID:      "population/over-100m",
			Label:   "Population of at least 100,000,000",
			Caption: "Population of at least 100,000,000",
			Query: func(e *query.Engine) ([]query.ProjectedCountry, error) {
				return e.ByPopulation(100_000_000, 0)
			},
		},
		Action{
			ID:      "population/1m-2m",
			Label:   "Population between 1,000,000 and 2,000,000",
			Caption: "Population between 1,000,000 and 2,000,000",
			Query: func(e *query.Engine) ([]query.ProjectedCountry, error) {
				return e.ByPopulation(1_000_000, 2_000_000)
			},
		},
		Action{
			ID:      "region/americas-large",
			Label:   "Americas, area of at least 1,000,000 km²",
			Caption: "Americas, area of at least 1,000,000 km²",
			Query: func(e *query.Engine) ([]query.ProjectedCountry, error) {
				return e.ByAreaAndContinent("Americas", 1_000_000)
			},
		},
		Action{
			ID:      "region/asia",
			Label:   "All countries of Asia",
			Caption: "All countries of Asia",
			Query: func(e *query.Engine) ([]query.ProjectedCountry, error) {
				return e.ByAreaAndContinent("Asia", 0)
			},
		},
	)

	return acts
}

// Find looks an action up by id.
func Find(id string) (Action, bool) {
	for _, a := range Actions() {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}
