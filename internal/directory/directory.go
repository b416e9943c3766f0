// Package directory holds the read-only registry of playable countries and
// resolves player input to country codes.
package directory

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tatianab/worldle/internal/models"
	"golang.org/x/text/cases"
)

// ErrDuplicateKey is matched by every *DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate directory key")

// maxNearestDistance bounds how different a "did you mean" candidate may be.
const maxNearestDistance = 3

// DuplicateKeyError reports two records that collide on code or name.
type DuplicateKeyError struct {
	Kind   string // "code" or "name"
	Key    string // normalized key
	First  string // code of the record already indexed
	Second string // code of the colliding record
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate country %s %q (records %s and %s)", e.Kind, e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// Directory is an immutable index of countries. It is safe for concurrent
// use once built.
type Directory struct {
	countries []models.Country
	byCode    map[string]int
	byName    map[string]int
	names     []string // normalized names, parallel to countries
}

// New indexes records in order. Records must be valid and unique by code
// and by case-insensitive name.
func New(records []models.Country) (*Directory, error) {
	d := &Directory{
		countries: make([]models.Country, 0, len(records)),
		byCode:    make(map[string]int, len(records)),
		byName:    make(map[string]int, len(records)),
		names:     make([]string, 0, len(records)),
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		code := Normalize(rec.Code)
		name := Normalize(rec.Name)
		if i, ok := d.byCode[code]; ok {
			return nil, &DuplicateKeyError{Kind: "code", Key: code, First: d.countries[i].Code, Second: rec.Code}
		}
		if i, ok := d.byName[name]; ok {
			return nil, &DuplicateKeyError{Kind: "name", Key: name, First: d.countries[i].Code, Second: rec.Code}
		}

		idx := len(d.countries)
		d.countries = append(d.countries, rec)
		d.names = append(d.names, name)
		d.byCode[code] = idx
		d.byName[name] = idx
	}
	return d, nil
}

// Normalize is the single matching rule for codes, names and prefixes:
// surrounding whitespace is dropped and the text is case folded.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ResolveName returns the code of the country whose name matches text
// exactly, ignoring case.
func (d *Directory) ResolveName(text string) (string, bool) {
	i, ok := d.byName[Normalize(text)]
	if !ok {
		return "", false
	}
	return d.countries[i].Code, true
}

// Get looks up a country by code, ignoring case.
func (d *Directory) Get(code string) (models.Country, bool) {
	i, ok := d.byCode[Normalize(code)]
	if !ok {
		return models.Country{}, false
	}
	return d.countries[i], true
}

// AllCodes returns every code in insertion order.
func (d *Directory) AllCodes() []string {
	codes := make([]string, len(d.countries))
	for i, c := range d.countries {
		codes[i] = c.Code
	}
	return codes
}

// Countries returns a copy of every record in insertion order.
func (d *Directory) Countries() []models.Country {
	out := make([]models.Country, len(d.countries))
	copy(out, d.countries)
	return out
}

// Len returns the number of countries.
func (d *Directory) Len() int {
	return len(d.countries)
}

// Nearest returns the display name closest to text by edit distance, for
// "did you mean" notices. It never takes part in resolving a guess.
func (d *Directory) Nearest(text string) (string, bool) {
	query := Normalize(text)
	if query == "" {
		return "", false
	}

	best, bestDist := -1, maxNearestDistance+1
	for i, name := range d.names {
		dist := levenshtein.ComputeDistance(query, name)
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return "", false
	}
	return d.countries[best].Name, true
}

// Entries yields each country's display name with its normalized form, in
// insertion order.
func (d *Directory) Entries() iter.Seq2[string, string] {
	return func(yield func(name, key string) bool) {
		for i, c := range d.countries {
			if !yield(c.Name, d.names[i]) {
				return
			}
		}
	}
}
