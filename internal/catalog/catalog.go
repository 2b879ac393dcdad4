package catalog

import (
	"strings"

	"mndmotors/internal/domain"
)

// Price band cutoffs used by the public listing filter (rupees).
const (
	cheapBelow   = 2_000_000
	premiumAbove = 20_000_000
)

// Filter is the browse-page filter specification. Every field is optional;
// an empty field matches all cars, set fields are combined with AND.
type Filter struct {
	Name      string // case-insensitive substring of car_name
	Type      string // exact match
	City      string // exact match against location
	Status    string // "available" | "sold"
	PriceBand string // "Cheap" | "Avg" | "Premium"
}

// Apply returns the cars matching f, preserving input order.
func Apply(cars []domain.Car, f Filter) []domain.Car {
	out := make([]domain.Car, 0, len(cars))
	for _, c := range cars {
		if matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c domain.Car, f Filter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if f.City != "" && c.Location != f.City {
		return false
	}
	switch f.Status {
	case "available":
		if c.Sold {
			return false
		}
	case "sold":
		if !c.Sold {
			return false
		}
	}
	switch f.PriceBand {
	case "Cheap":
		if c.Price >= cheapBelow {
			return false
		}
	case "Avg":
		if c.Price < cheapBelow || c.Price > premiumAbove {
			return false
		}
	case "Premium":
		if c.Price <= premiumAbove {
			return false
		}
	}
	return true
}

// Partition splits cars into the available and sold display sections.
func Partition(cars []domain.Car) (available, sold []domain.Car) {
	for _, c := range cars {
		if c.Sold {
			sold = append(sold, c)
		} else {
			available = append(available, c)
		}
	}
	return available, sold
}

// DistinctTypes returns the unique car types in first-seen order. Callers pass
// the unfiltered set so selector options stay stable while filters change.
func DistinctTypes(cars []domain.Car) []string {
	return distinct(cars, func(c domain.Car) string { return c.Type })
}

// DistinctCities returns the unique locations in first-seen order, over the
// unfiltered set for the same reason as DistinctTypes.
func DistinctCities(cars []domain.Car) []string {
	return distinct(cars, func(c domain.Car) string { return c.Location })
}

func distinct(cars []domain.Car, key func(domain.Car) string) []string {
	seen := make(map[string]bool, len(cars))
	var out []string
	for _, c := range cars {
		k := key(c)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Summary holds the dashboard headline counts. They are totals over the full
// set, not a re-derivation of any active filter or price band; keep this
// separate from Apply.
type Summary struct {
	Total     int
	Available int
	Sold      int
}

func Summarize(cars []domain.Car) Summary {
	s := Summary{Total: len(cars)}
	for _, c := range cars {
		if c.Sold {
			s.Sold++
		} else {
			s.Available++
		}
	}
	return s
}
