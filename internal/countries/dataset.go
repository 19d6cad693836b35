package countries

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"countrytable/data"
)

// Dataset holds the canonical record list in load order plus derived
// read-only indexes. Accessors hand out copies so callers can never reach
// the canonical records.
type Dataset struct {
	records []Record
	byCode  map[string]int
	byName  map[string]int // normalized English name -> index
	labels  []string       // sorted union of language labels across records
}

// LoadDataset reads a dataset from a JSON file (ordered list of records).
func LoadDataset(path string) (*Dataset, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return parseDataset(b)
}

// DefaultDataset builds the dataset embedded in the binary.
func DefaultDataset() (*Dataset, error) {
	return parseDataset(data.Countries())
}

func parseDataset(b []byte) (*Dataset, error) {
	var records []Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return NewDataset(records)
}

// NewDataset validates the records and builds the indexes. The input slice
// is copied; the caller keeps no handle on the canonical data.
func NewDataset(records []Record) (*Dataset, error) {
	d := &Dataset{
		records: make([]Record, 0, len(records)),
		byCode:  make(map[string]int, len(records)),
		byName:  make(map[string]int, len(records)),
	}

	labels := map[string]struct{}{}

	for i, r := range records {
		code := strings.ToUpper(strings.TrimSpace(r.Code))
		if len(code) != 2 || !isLetters(code) {
			return nil, fmt.Errorf("record %d: bad ISO2 code %q", i, r.Code)
		}
		if _, dup := d.byCode[code]; dup {
			return nil, fmt.Errorf("record %d: duplicate code %q", i, code)
		}
		if !knownContinent(r.Continent) {
			return nil, fmt.Errorf("record %d (%s): unknown continent %q", i, code, r.Continent)
		}
		if r.AreaKm2 < 0 {
			return nil, fmt.Errorf("record %d (%s): negative area", i, code)
		}
		if r.Population < 0 {
			return nil, fmt.Errorf("record %d (%s): negative population", i, code)
		}
		english := strings.TrimSpace(r.Name[DefaultLanguage])
		if english == "" {
			return nil, fmt.Errorf("record %d (%s): missing English name", i, code)
		}

		r.Code = code
		r.Name = maps.Clone(r.Name)
		d.byCode[code] = len(d.records)
		d.byName[normalizeKey(english)] = len(d.records)
		d.records = append(d.records, r)

		for l := range r.Name {
			labels[l] = struct{}{}
		}
	}

	d.labels = make([]string, 0, len(labels))
	for l := range labels {
		d.labels = append(d.labels, l)
	}
	sort.Strings(d.labels)

	return d, nil
}

func (d *Dataset) Len() int { return len(d.records) }

// Record returns a copy of the i-th record with its own name map.
func (d *Dataset) Record(i int) Record {
	r := d.records[i]
	r.Name = maps.Clone(r.Name)
	return r
}

// Records returns a fresh copy of the whole record list in load order.
func (d *Dataset) Records() []Record {
	out := make([]Record, d.Len())
	for i := range out {
		out[i] = d.Record(i)
	}
	return out
}

// ByCode looks a record up by ISO2 code, case-insensitively.
func (d *Dataset) ByCode(code string) (Record, bool) {
	i, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Record{}, false
	}
	return d.Record(i), true
}

// Lookup finds a record by English name (normalized: case and punctuation
// insensitive) or by ISO2 code.
func (d *Dataset) Lookup(name string) (Record, bool) {
	if r, ok := d.ByCode(name); ok {
		return r, true
	}
	i, ok := d.byName[normalizeKey(name)]
	if !ok {
		return Record{}, false
	}
	return d.Record(i), true
}

// Languages returns the sorted union of language labels across all records.
func (d *Dataset) Languages() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// HasLanguage reports whether any record carries a name under this label.
func (d *Dataset) HasLanguage(label string) bool {
	for _, l := range d.labels {
		if l == label {
			return true
		}
	}
	return false
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false

	for _, r := range s {
		// Keep letters and digits, collapse everything else to single spaces
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}
