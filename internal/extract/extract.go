// Package extract recognizes gazetteer places inside free-form tour text and
// resolves them to city keys.
package extract

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"tour-weather/internal/gazetteer"
	"tour-weather/internal/normalize"
	"tour-weather/internal/types"
)

// Result is the outcome of scanning one text. All contains each city key at
// most once, in gazetteer order with POI-derived matches first. Primary is
// the first element, or empty when nothing matched.
type Result struct {
	Primary types.CityKey
	All     []types.CityKey
}

// Extractor matches gazetteer labels against normalized text. Build it once
// and reuse it; it is safe for concurrent use.
type Extractor struct {
	matcher ahocorasick.AhoCorasick
	// owners[i] is the city key credited when pattern i matches. POI label
	// patterns come first so their owning cities win the ordering.
	owners []types.CityKey
}

// New builds an extractor over the full gazetteer.
func New() *Extractor {
	return NewWithGazetteer(gazetteer.POIs(), gazetteer.Cities())
}

// NewWithGazetteer builds an extractor over custom reference data. This is
// useful for testing with a reduced gazetteer.
func NewWithGazetteer(pois []types.PointOfInterest, cities []types.City) *Extractor {
	var patterns []string
	var owners []types.CityKey

	for _, poi := range pois {
		for _, label := range poi.Labels {
			patterns = append(patterns, normalize.Text(label))
			owners = append(owners, poi.City)
		}
	}
	for _, city := range cities {
		for _, label := range city.Labels {
			patterns = append(patterns, normalize.Text(label))
			owners = append(owners, city.Key)
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchKind: ahocorasick.LeftMostLongestMatch,
		DFA:       true,
	})

	return &Extractor{
		matcher: builder.Build(patterns),
		owners:  owners,
	}
}

// Extract scans text and returns the matched city keys. The text is scanned
// once; matched patterns are then walked in gazetteer order, so the output
// order does not depend on where in the text a place was mentioned.
func (e *Extractor) Extract(text string) Result {
	matched := make([]bool, len(e.owners))
	for _, m := range e.matcher.FindAll(normalize.Text(text)) {
		matched[m.Pattern()] = true
	}

	var all []types.CityKey
	seen := make(map[types.CityKey]struct{})
	for i, hit := range matched {
		if !hit {
			continue
		}
		key := e.owners[i]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		all = append(all, key)
	}

	res := Result{All: all}
	if len(all) > 0 {
		res.Primary = all[0]
	}
	return res
}
