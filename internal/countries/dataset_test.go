package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	ds, err := DefaultDataset()
	require.NoError(t, err)
	assert.Greater(t, ds.Len(), 10)

	// Every supported menu language appears somewhere in the dataset.
	for _, label := range SupportedLanguages() {
		assert.True(t, ds.HasLanguage(label), label)
	}

	rec, ok := ds.ByCode("ca")
	require.True(t, ok)
	assert.Equal(t, "CA", rec.Code)
	assert.Equal(t, "Ottawa", rec.Capital)
	assert.Equal(t, "Canada", rec.Name["English"])
}

func TestLookup(t *testing.T) {
	ds, err := DefaultDataset()
	require.NoError(t, err)

	rec, ok := ds.Lookup("united  states")
	require.True(t, ok)
	assert.Equal(t, "US", rec.Code)

	rec, ok = ds.Lookup("South-Korea")
	require.True(t, ok)
	assert.Equal(t, "KR", rec.Code)

	rec, ok = ds.Lookup("jp")
	require.True(t, ok)
	assert.Equal(t, "JP", rec.Code)

	_, ok = ds.Lookup("Atlantis")
	assert.False(t, ok)
}

func TestRecordsAreCopies(t *testing.T) {
	ds, err := DefaultDataset()
	require.NoError(t, err)

	rec := ds.Record(0)
	rec.Name["English"] = "tampered"

	assert.NotEqual(t, "tampered", ds.Record(0).Name["English"])
}

func validRecord() Record {
	return Record{
		Code: "CA", Continent: "Americas", AreaKm2: 9984670, Population: 36624199,
		Capital: "Ottawa", Name: map[string]string{"English": "Canada"},
	}
}

func TestNewDatasetValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Record)
	}{
		{"bad code", func(r *Record) { r.Code = "CAN" }},
		{"non-letter code", func(r *Record) { r.Code = "C1" }},
		{"unknown continent", func(r *Record) { r.Continent = "Atlantis" }},
		{"negative area", func(r *Record) { r.AreaKm2 = -1 }},
		{"negative population", func(r *Record) { r.Population = -1 }},
		{"missing English name", func(r *Record) { r.Name = map[string]string{"French": "Canada"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			_, err := NewDataset([]Record{r})
			assert.Error(t, err)
		})
	}

	t.Run("duplicate code", func(t *testing.T) {
		_, err := NewDataset([]Record{validRecord(), validRecord()})
		assert.Error(t, err)
	})
}

func TestLanguageTag(t *testing.T) {
	tag, ok := LanguageTag("Chinese")
	require.True(t, ok)
	assert.Equal(t, "zh", tag.String())

	_, ok = LanguageTag("Klingon")
	assert.False(t, ok)
}
