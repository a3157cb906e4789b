package types

// CityKey is the stable identifier of a city in the gazetteer, e.g. "da-nang".
type CityKey string

// City is a gazetteer entry: a stable key plus the label variants that may
// appear in free-form tour text.
type City struct {
	Key    CityKey
	Labels []string
}

// PointOfInterest is a gazetteer entry for a named sight. A match on any of
// its labels resolves to the owning city.
type PointOfInterest struct {
	Key    string
	Labels []string
	City   CityKey
}
