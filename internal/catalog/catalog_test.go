package catalog_test

import (
	"reflect"
	"testing"

	"mndmotors/internal/catalog"
	"mndmotors/internal/domain"
)

func fixture() []domain.Car {
	return []domain.Car{
		{ID: 1, Name: "Maruti Swift", Type: "SUV", Location: "Rajkot", Price: 1_500_000, Sold: false},
		{ID: 2, Name: "Honda City", Type: "Sedan", Location: "Surat", Price: 25_000_000, Sold: true},
	}
}

func ids(cars []domain.Car) []int64 {
	out := make([]int64, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.ID)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	cars := fixture()

	cases := []struct {
		name   string
		filter catalog.Filter
		want   []int64
	}{
		{"empty filter matches all", catalog.Filter{}, []int64{1, 2}},
		{"cheap band", catalog.Filter{PriceBand: "Cheap"}, []int64{1}},
		{"avg band excludes both", catalog.Filter{PriceBand: "Avg"}, []int64{}},
		{"premium band", catalog.Filter{PriceBand: "Premium"}, []int64{2}},
		{"status sold", catalog.Filter{Status: "sold"}, []int64{2}},
		{"status available", catalog.Filter{Status: "available"}, []int64{1}},
		{"city exact", catalog.Filter{City: "Rajkot"}, []int64{1}},
		{"type exact", catalog.Filter{Type: "Sedan"}, []int64{2}},
		{"name substring case-insensitive", catalog.Filter{Name: "swIFt"}, []int64{1}},
		{"conjunctive", catalog.Filter{City: "Rajkot", Status: "sold"}, []int64{}},
	}

	for _, tc := range cases {
		got := ids(catalog.Apply(cars, tc.filter))
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestApplyPriceBandBoundaries(t *testing.T) {
	cars := []domain.Car{
		{ID: 1, Price: 1_999_999},
		{ID: 2, Price: 2_000_000},
		{ID: 3, Price: 20_000_000},
		{ID: 4, Price: 20_000_001},
	}
	if got := ids(catalog.Apply(cars, catalog.Filter{PriceBand: "Cheap"})); !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("Cheap: got %v", got)
	}
	// Avg is inclusive at both ends.
	if got := ids(catalog.Apply(cars, catalog.Filter{PriceBand: "Avg"})); !reflect.DeepEqual(got, []int64{2, 3}) {
		t.Errorf("Avg: got %v", got)
	}
	if got := ids(catalog.Apply(cars, catalog.Filter{PriceBand: "Premium"})); !reflect.DeepEqual(got, []int64{4}) {
		t.Errorf("Premium: got %v", got)
	}
}

func TestPartition(t *testing.T) {
	available, sold := catalog.Partition(fixture())
	if len(available) != 1 || available[0].ID != 1 {
		t.Fatalf("available: got %v", ids(available))
	}
	if len(sold) != 1 || sold[0].ID != 2 {
		t.Fatalf("sold: got %v", ids(sold))
	}
}

func TestDistinctFacets(t *testing.T) {
	cars := []domain.Car{
		{Type: "SUV", Location: "Rajkot"},
		{Type: "Sedan", Location: "Surat"},
		{Type: "SUV", Location: "Rajkot"},
		{Type: "Hatchback", Location: "Surat"},
	}
	if got := catalog.DistinctTypes(cars); !reflect.DeepEqual(got, []string{"SUV", "Sedan", "Hatchback"}) {
		t.Errorf("types: got %v", got)
	}
	if got := catalog.DistinctCities(cars); !reflect.DeepEqual(got, []string{"Rajkot", "Surat"}) {
		t.Errorf("cities: got %v", got)
	}
}

// Facets come from the full set; an active filter must not shrink the options.
func TestFacetsIgnoreActiveFilter(t *testing.T) {
	cars := fixture()
	filtered := catalog.Apply(cars, catalog.Filter{City: "Rajkot"})
	if len(filtered) != 1 {
		t.Fatalf("setup: got %v", ids(filtered))
	}
	if got := catalog.DistinctCities(cars); len(got) != 2 {
		t.Errorf("cities over full set: got %v", got)
	}
}

func TestSummarizeCountsAreUnfiltered(t *testing.T) {
	cars := []domain.Car{
		{Sold: false, Price: 100},
		{Sold: true, Price: 30_000_000},
		{Sold: true, Price: 1_000},
	}
	s := catalog.Summarize(cars)
	if s.Total != 3 || s.Available != 1 || s.Sold != 2 {
		t.Fatalf("summary: got %+v", s)
	}
}
