// Package gazetteer holds the static place reference data for the tour
// pipeline: the cities the tours visit, the points of interest that resolve
// to them, and the geocoder query for each city. The data is read-only and
// safe for concurrent use.
package gazetteer

import (
	"tour-weather/internal/types"
)

// FallbackCity is used when no place can be extracted from a tour text, and
// as the query fallback for unknown city keys.
const FallbackCity types.CityKey = "da-nang"

// cities lists every known city with the label variants that show up in tour
// names and schedules. Accented and plain spellings are both listed; matching
// happens on the normalized form, so casing and diacritics do not matter.
var cities = []types.City{
	{Key: "da-nang", Labels: []string{"Đà Nẵng", "Da Nang", "Danang"}},
	{Key: "hoi-an", Labels: []string{"Hội An", "Hoi An"}},
	{Key: "hue", Labels: []string{"Huế", "Hue"}},
	{Key: "ha-noi", Labels: []string{"Hà Nội", "Ha Noi", "Hanoi"}},
	{Key: "ho-chi-minh", Labels: []string{"Hồ Chí Minh", "Ho Chi Minh", "Sài Gòn", "Saigon", "TPHCM"}},
	{Key: "nha-trang", Labels: []string{"Nha Trang"}},
	{Key: "da-lat", Labels: []string{"Đà Lạt", "Da Lat", "Dalat"}},
}

// pois maps well-known sights to their owning city. A POI label match counts
// as a match for the owning city.
var pois = []types.PointOfInterest{
	{Key: "ba-na-hills", City: "da-nang", Labels: []string{"Bà Nà Hills", "Ba Na Hills", "Bà Nà"}},
	{Key: "cau-rong", City: "da-nang", Labels: []string{"Cầu Rồng", "Dragon Bridge"}},
	{Key: "ngu-hanh-son", City: "da-nang", Labels: []string{"Ngũ Hành Sơn", "Marble Mountains"}},
	{Key: "pho-co-hoi-an", City: "hoi-an", Labels: []string{"Phố cổ Hội An", "Hoi An Ancient Town"}},
	{Key: "my-son", City: "hoi-an", Labels: []string{"Thánh địa Mỹ Sơn", "My Son Sanctuary"}},
	{Key: "dai-noi", City: "hue", Labels: []string{"Đại Nội", "Kinh thành Huế", "Imperial City"}},
	{Key: "chua-thien-mu", City: "hue", Labels: []string{"Chùa Thiên Mụ", "Thien Mu Pagoda"}},
	{Key: "ho-guom", City: "ha-noi", Labels: []string{"Hồ Gươm", "Hồ Hoàn Kiếm", "Hoan Kiem Lake"}},
	{Key: "van-mieu", City: "ha-noi", Labels: []string{"Văn Miếu", "Temple of Literature"}},
	{Key: "ben-thanh", City: "ho-chi-minh", Labels: []string{"Chợ Bến Thành", "Ben Thanh Market"}},
	{Key: "vinpearl-nha-trang", City: "nha-trang", Labels: []string{"Vinpearl Nha Trang", "Hòn Tre"}},
	{Key: "ho-xuan-huong", City: "da-lat", Labels: []string{"Hồ Xuân Hương", "Xuan Huong Lake"}},
	{Key: "thung-lung-tinh-yeu", City: "da-lat", Labels: []string{"Thung lũng Tình Yêu", "Valley of Love"}},
}

// cityQueries maps a city key to the query string sent to the geocoder. The
// country qualifier keeps Nominatim from picking namesakes elsewhere.
var cityQueries = map[types.CityKey]string{
	"da-nang":     "Da Nang, Vietnam",
	"hoi-an":      "Hoi An, Quang Nam, Vietnam",
	"hue":         "Hue, Vietnam",
	"ha-noi":      "Hanoi, Vietnam",
	"ho-chi-minh": "Ho Chi Minh City, Vietnam",
	"nha-trang":   "Nha Trang, Khanh Hoa, Vietnam",
	"da-lat":      "Da Lat, Lam Dong, Vietnam",
}

// Cities returns the city reference data in gazetteer order.
func Cities() []types.City {
	return cities
}

// POIs returns the point-of-interest reference data in gazetteer order.
func POIs() []types.PointOfInterest {
	return pois
}

// QueryForCity maps a city key to its geocoder query. Unknown keys fall back
// to the FallbackCity query; the mapping is total and never fails.
func QueryForCity(key types.CityKey) string {
	if q, ok := cityQueries[key]; ok {
		return q
	}
	return cityQueries[FallbackCity]
}
