package query

import (
	"fmt"
	"maps"

	"countrytable/internal/countries"
)

// ProjectedCountry is a per-query copy of a record with the name resolved
// to a single language. Names is populated only by Unresolved, which keeps
// the whole label map instead.
type ProjectedCountry struct {
	Code       string            `json:"code"`
	Continent  string            `json:"continent"`
	AreaKm2    float64           `json:"area_km2"`
	Population int64             `json:"population"`
	Capital    string            `json:"capital"`
	Name       string            `json:"name"`
	Names      map[string]string `json:"names,omitempty"`
}

// Engine exposes read-only derived views over an immutable dataset.
// All queries are pure and synchronous; none of them touch the dataset.
type Engine struct {
	ds *countries.Dataset
}

func NewEngine(ds *countries.Dataset) *Engine {
	return &Engine{ds: ds}
}

func (e *Engine) Dataset() *countries.Dataset { return e.ds }

// ByLanguage projects every record with its name resolved for the given
// language label. An empty label means the default, English. The result
// preserves dataset order and has one entry per record.
//
// An unknown label is rejected with a ValidationError. A record that is
// merely missing a translation for a known label comes back with an empty
// Name; that is a query miss, not an error.
func (e *Engine) ByLanguage(language string) ([]ProjectedCountry, error) {
	if language == "" {
		language = countries.DefaultLanguage
	}
	if !e.ds.HasLanguage(language) {
		return nil, &ValidationError{
			Field:  "language",
			Reason: fmt.Sprintf("unknown language label %q", language),
		}
	}

	out := make([]ProjectedCountry, 0, e.ds.Len())
	for i := 0; i < e.ds.Len(); i++ {
		out = append(out, project(e.ds.Record(i), language))
	}
	return out, nil
}

// Unresolved projects every record without resolving names: Name stays
// empty and Names carries a copy of the full label map.
func (e *Engine) Unresolved() []ProjectedCountry {
	out := make([]ProjectedCountry, 0, e.ds.Len())
	for i := 0; i < e.ds.Len(); i++ {
		r := e.ds.Record(i)
		pc := projectFields(r)
		pc.Names = maps.Clone(r.Name)
		out = append(out, pc)
	}
	return out
}

// ByPopulation returns English-resolved records whose population falls in
// [minPopulation, maxPopulation]. maxPopulation == 0 means no upper bound.
// Each match is prepended, so results come out in reverse dataset order.
func (e *Engine) ByPopulation(minPopulation, maxPopulation int64) ([]ProjectedCountry, error) {
	if minPopulation < 0 {
		return nil, &ValidationError{Field: "minPopulation", Reason: "must not be negative"}
	}
	if maxPopulation < 0 {
		return nil, &ValidationError{Field: "maxPopulation", Reason: "must not be negative"}
	}
	if maxPopulation != 0 && maxPopulation < minPopulation {
		return nil, &ValidationError{Field: "maxPopulation", Reason: "below minPopulation"}
	}

	base, err := e.ByLanguage(countries.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	var out []ProjectedCountry
	for _, pc := range base {
		if pc.Population < minPopulation {
			continue
		}
		if maxPopulation != 0 && pc.Population > maxPopulation {
			continue
		}
		out = append([]ProjectedCountry{pc}, out...)
	}
	return out, nil
}

// ByAreaAndContinent returns English-resolved records on the given
// continent (exact, case-sensitive match) with area of at least minArea,
// in reverse dataset order. A continent not present in the dataset yields
// an empty result.
func (e *Engine) ByAreaAndContinent(continent string, minArea float64) ([]ProjectedCountry, error) {
	if minArea < 0 {
		return nil, &ValidationError{Field: "minArea", Reason: "must not be negative"}
	}

	base, err := e.ByLanguage(countries.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	var out []ProjectedCountry
	for _, pc := range base {
		if pc.Continent != continent || pc.AreaKm2 < minArea {
			continue
		}
		out = append([]ProjectedCountry{pc}, out...)
	}
	return out, nil
}

func project(r countries.Record, language string) ProjectedCountry {
	pc := projectFields(r)
	pc.Name = r.Name[language]
	return pc
}

func projectFields(r countries.Record) ProjectedCountry {
	return ProjectedCountry{
		Code:       r.Code,
		Continent:  r.Continent,
		AreaKm2:    r.AreaKm2,
		Population: r.Population,
		Capital:    r.Capital,
	}
}
