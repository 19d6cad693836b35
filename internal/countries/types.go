package countries

// Record is one country as loaded from the dataset. Immutable after load.
// Name maps a language label ("English", "French", ...) to the localized
// country name; English is always present, other labels are optional.
type Record struct {
	Code       string            `json:"code"`
	Continent  string            `json:"continent"`
	AreaKm2    float64           `json:"area_km2"`
	Population int64             `json:"population"`
	Capital    string            `json:"capital"`
	Name       map[string]string `json:"name"`
}

// Continents recognized by dataset validation (UN scheme, "Americas" not
// "North/South America").
var Continents = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}

func knownContinent(c string) bool {
	for _, k := range Continents {
		if c == k {
			return true
		}
	}
	return false
}
