package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrytable/internal/countries"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	ds, err := countries.NewDataset([]countries.Record{
		{Code: "CA", Continent: "Americas", AreaKm2: 9984670, Population: 36624199, Capital: "Ottawa",
			Name: map[string]string{"English": "Canada", "French": "Canada", "Japanese": "カナダ"}},
		{Code: "CN", Continent: "Asia", AreaKm2: 9596961, Population: 1411778724, Capital: "Beijing",
			Name: map[string]string{"English": "China", "Russian": "Китай"}},
		{Code: "EE", Continent: "Europe", AreaKm2: 45227, Population: 1331824, Capital: "Tallinn",
			Name: map[string]string{"English": "Estonia"}},
		{Code: "JP", Continent: "Asia", AreaKm2: 377975, Population: 125502000, Capital: "Tokyo",
			Name: map[string]string{"English": "Japan", "Japanese": "日本"}},
		{Code: "MX", Continent: "Americas", AreaKm2: 1964375, Population: 126014024, Capital: "Mexico City",
			Name: map[string]string{"English": "Mexico"}},
	})
	require.NoError(t, err)
	return NewEngine(ds)
}

func codes(list []ProjectedCountry) []string {
	out := make([]string, 0, len(list))
	for _, pc := range list {
		out = append(out, pc.Code)
	}
	return out
}

func TestByLanguage(t *testing.T) {
	e := testEngine(t)

	list, err := e.ByLanguage("English")
	require.NoError(t, err)
	require.Len(t, list, e.Dataset().Len())
	assert.Equal(t, []string{"CA", "CN", "EE", "JP", "MX"}, codes(list))
	assert.Equal(t, "Canada", list[0].Name)
	assert.Equal(t, "Mexico", list[4].Name)
}

func TestByLanguageDefaultsToEnglish(t *testing.T) {
	e := testEngine(t)

	def, err := e.ByLanguage("")
	require.NoError(t, err)
	english, err := e.ByLanguage("English")
	require.NoError(t, err)
	assert.Equal(t, english, def)
}

func TestByLanguageMissingTranslationIsSilent(t *testing.T) {
	e := testEngine(t)

	list, err := e.ByLanguage("Japanese")
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "カナダ", list[0].Name)
	assert.Empty(t, list[1].Name) // China has no Japanese name
	assert.Equal(t, "日本", list[3].Name)
}

func TestByLanguageUnknownLabel(t *testing.T) {
	e := testEngine(t)

	_, err := e.ByLanguage("Klingon")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "language", ve.Field)
}

func TestByLanguageNeverMutatesDataset(t *testing.T) {
	e := testEngine(t)

	jp, err := e.ByLanguage("Japanese")
	require.NoError(t, err)
	jp[0].Name = "tampered"

	en, err := e.ByLanguage("English")
	require.NoError(t, err)
	assert.Equal(t, "Canada", en[0].Name)

	again, err := e.ByLanguage("Japanese")
	require.NoError(t, err)
	assert.Equal(t, "カナダ", again[0].Name)
}

func TestUnresolvedKeepsNameMap(t *testing.T) {
	e := testEngine(t)

	list := e.Unresolved()
	require.Len(t, list, 5)
	assert.Empty(t, list[0].Name)
	assert.Equal(t, "Canada", list[0].Names["English"])

	// The returned map is a copy; writing through it must not leak back.
	list[0].Names["English"] = "tampered"
	assert.Equal(t, "Canada", e.Unresolved()[0].Names["English"])
}

func TestByPopulationMinOnly(t *testing.T) {
	e := testEngine(t)

	list, err := e.ByPopulation(100_000_000, 0)
	require.NoError(t, err)
	// Matches CN, JP, MX in dataset order; results are reversed.
	assert.Equal(t, []string{"MX", "JP", "CN"}, codes(list))
	for _, pc := range list {
		assert.GreaterOrEqual(t, pc.Population, int64(100_000_000))
	}
}

func TestByPopulationRange(t *testing.T) {
	e := testEngine(t)

	list, err := e.ByPopulation(1_000_000, 2_000_000)
	require.NoError(t, err)
	assert.Equal(t, []string{"EE"}, codes(list))
}

func TestByPopulationZeroMaxMeansUnbounded(t *testing.T) {
	e := testEngine(t)

	// max 0 is "no upper bound", not an empty [min, 0] range.
	withZero, err := e.ByPopulation(1_000_000, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"MX", "JP", "EE", "CN", "CA"}, codes(withZero))
}

func TestByPopulationValidation(t *testing.T) {
	e := testEngine(t)

	var ve *ValidationError
	_, err := e.ByPopulation(-1, 0)
	require.ErrorAs(t, err, &ve)

	_, err = e.ByPopulation(0, -1)
	require.ErrorAs(t, err, &ve)

	_, err = e.ByPopulation(2_000_000, 1_000_000)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "maxPopulation", ve.Field)
}

func TestByAreaAndContinent(t *testing.T) {
	e := testEngine(t)

	list, err := e.ByAreaAndContinent("Americas", 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, []string{"MX", "CA"}, codes(list))

	list, err = e.ByAreaAndContinent("Asia", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"JP", "CN"}, codes(list))
	assert.Equal(t, "Japan", list[0].Name)
}

func TestByAreaAndContinentMismatchIsSilent(t *testing.T) {
	e := testEngine(t)

	// Continent matching is exact and case-sensitive; a miss is empty, not
	// an error.
	list, err := e.ByAreaAndContinent("asia", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestByAreaAndContinentValidation(t *testing.T) {
	e := testEngine(t)

	_, err := e.ByAreaAndContinent("Asia", -1)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "minArea", ve.Field)
}

func TestSingleRecordDataset(t *testing.T) {
	ds, err := countries.NewDataset([]countries.Record{
		{Code: "CA", Continent: "Americas", AreaKm2: 9984670, Population: 36624199, Capital: "Ottawa",
			Name: map[string]string{"English": "Canada"}},
	})
	require.NoError(t, err)
	e := NewEngine(ds)

	list, err := e.ByLanguage("English")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Canada", list[0].Name)
	assert.Equal(t, "Ottawa", list[0].Capital)

	list, err = e.ByPopulation(40_000_000, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = e.ByAreaAndContinent("Americas", 1_000_000)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CA", list[0].Code)
}
