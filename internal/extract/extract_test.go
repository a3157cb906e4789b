package extract

import (
	"reflect"
	"testing"

	"tour-weather/internal/types"
)

func TestExtract(t *testing.T) {
	extractor := New()

	tests := []struct {
		name        string
		text        string
		wantPrimary types.CityKey
		wantAll     []types.CityKey
	}{
		{
			name:        "poi match resolves to owning city",
			text:        "Một ngày khám phá Bà Nà Hills",
			wantPrimary: "da-nang",
			wantAll:     []types.CityKey{"da-nang"},
		},
		{
			name:        "poi match precedes independent city match",
			text:        "Sáng tham quan Hội An, chiều lên Bà Nà Hills",
			wantPrimary: "da-nang",
			wantAll:     []types.CityKey{"da-nang", "hoi-an"},
		},
		{
			name:        "city name matched without diacritics",
			text:        "3 ngay kham pha da nang va hue",
			wantPrimary: "da-nang",
			wantAll:     []types.CityKey{"da-nang", "hue"},
		},
		{
			name:        "city key appears at most once",
			text:        "Đà Nẵng - Cầu Rồng - Ngũ Hành Sơn",
			wantPrimary: "da-nang",
			wantAll:     []types.CityKey{"da-nang"},
		},
		{
			name:        "poi and its own city are not double counted",
			text:        "Phố cổ Hội An về đêm",
			wantPrimary: "hoi-an",
			wantAll:     []types.CityKey{"hoi-an"},
		},
		{
			name:        "no match yields empty result",
			text:        "completely unrelated text",
			wantPrimary: "",
			wantAll:     nil,
		},
		{
			name:        "empty text",
			text:        "",
			wantPrimary: "",
			wantAll:     nil,
		},
		{
			name:        "multiple cities keep gazetteer order",
			text:        "Hành trình Sài Gòn - Đà Lạt - Nha Trang",
			wantPrimary: "ho-chi-minh",
			wantAll:     []types.CityKey{"ho-chi-minh", "nha-trang", "da-lat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := extractor.Extract(tt.text)
			if res.Primary != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", res.Primary, tt.wantPrimary)
			}
			if !reflect.DeepEqual(res.All, tt.wantAll) {
				t.Errorf("All = %v, want %v", res.All, tt.wantAll)
			}
		})
	}
}

func TestExtract_CustomGazetteer(t *testing.T) {
	pois := []types.PointOfInterest{
		{Key: "old-town", City: "beta", Labels: []string{"Old Town"}},
	}
	cities := []types.City{
		{Key: "alpha", Labels: []string{"Alpha"}},
		{Key: "beta", Labels: []string{"Beta"}},
	}
	extractor := NewWithGazetteer(pois, cities)

	// The POI owner comes first even though "Alpha" appears earlier in the
	// text: output order follows the gazetteer, not text position.
	res := extractor.Extract("visit Alpha then the Old Town")
	want := []types.CityKey{"beta", "alpha"}
	if !reflect.DeepEqual(res.All, want) {
		t.Errorf("All = %v, want %v", res.All, want)
	}
}
