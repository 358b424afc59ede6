package fuelconfig

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
	"fuelops/pkg/similarity"
)

const (
	// maxSuggestions caps the near-miss candidates returned on a failed
	// resolution.
	maxSuggestions = 3

	suggestionThreshold = 0.5
	fuzzyKeepThreshold  = 0.6
	fuzzyMatchThreshold = 0.8
)

// Fallbacks applied when the administrator configuration has no entry
// for the truck or destination. The extra-fuel default is the lowest
// batch tier.
var (
	defaultExtraFuelLiters = decimal.NewFromInt(50)
	defaultRouteLiters     = decimal.NewFromInt(2000)
)

// Snapshot is a point-in-time copy of the administrator configuration.
// All resolution methods are pure: the same snapshot and input always
// produce the same result, which keeps resolution testable with fixed
// fixtures. Callers refresh snapshots through Service.
type Snapshot struct {
	Batches     []entities.TruckBatch
	Routes      []entities.Route
	Surcharges  []entities.Surcharge
	StationMaps []entities.StationCheckpoint
}

// ResolveTruckExtraFuel finds the extra-fuel batch for a truck by the
// last whitespace-delimited token of its number. A miss falls back to
// the system default tier and carries up to three suffix suggestions.
func (s *Snapshot) ResolveTruckExtraFuel(truckNo string) entities.ExtraFuelResult {
	suffix := truckSuffix(truckNo)

	for _, b := range s.Batches {
		if strings.EqualFold(b.Suffix, suffix) {
			return entities.ExtraFuelResult{
				Liters:  b.Liters,
				Matched: true,
				Batch:   b.Batch,
				Suffix:  suffix,
			}
		}
	}

	candidates := make([]string, 0, len(s.Batches))
	for _, b := range s.Batches {
		candidates = append(candidates, b.Suffix)
	}

	return entities.ExtraFuelResult{
		Liters:      defaultExtraFuelLiters,
		Matched:     false,
		Suffix:      suffix,
		Suggestions: rankSuggestions(suffix, candidates, suggestionThreshold),
	}
}

// ResolveRouteLiters resolves the total-liters allocation for a
// destination: exact, then partial (configured name contained in the
// input), then fuzzy. A fuzzy candidate is accepted only at high
// similarity; anything weaker falls back to the default allocation
// with suggestions.
func (s *Snapshot) ResolveRouteLiters(destination string) entities.RouteLitersResult {
	input := strings.TrimSpace(destination)

	for _, r := range s.Routes {
		if strings.EqualFold(r.Destination, input) {
			return entities.RouteLitersResult{
				Liters:       r.Liters,
				Matched:      true,
				MatchType:    entities.RouteMatchExact,
				MatchedRoute: r.Destination,
			}
		}
	}

	upperInput := strings.ToUpper(input)
	for _, r := range s.Routes {
		if r.Destination != "" && strings.Contains(upperInput, strings.ToUpper(r.Destination)) {
			return entities.RouteLitersResult{
				Liters:       r.Liters,
				Matched:      true,
				MatchType:    entities.RouteMatchPartial,
				MatchedRoute: r.Destination,
			}
		}
	}

	type scored struct {
		route entities.Route
		score float64
	}
	kept := make([]scored, 0, len(s.Routes))
	for _, r := range s.Routes {
		score := similarity.Similarity(input, r.Destination)
		if score >= fuzzyKeepThreshold {
			kept = append(kept, scored{route: r, score: score})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if len(kept) > 0 && kept[0].score >= fuzzyMatchThreshold {
		return entities.RouteLitersResult{
			Liters:       kept[0].route.Liters,
			Matched:      true,
			MatchType:    entities.RouteMatchFuzzy,
			MatchedRoute: kept[0].route.Destination,
		}
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, c := range kept {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, c.route.Destination)
	}

	return entities.RouteLitersResult{
		Liters:      defaultRouteLiters,
		Matched:     false,
		MatchType:   entities.RouteMatchDefault,
		Suggestions: suggestions,
	}
}

// ResolveLoadingPointSurcharge returns the configured surcharge for a
// special loading point, zero when none matches.
func (s *Snapshot) ResolveLoadingPointSurcharge(loadingPoint string) decimal.Decimal {
	return s.resolveSurcharge(loadingPoint)
}

// ResolveDestinationSurcharge returns the configured surcharge for a
// special destination, zero when none matches.
func (s *Snapshot) ResolveDestinationSurcharge(destination string) decimal.Decimal {
	return s.resolveSurcharge(destination)
}

func (s *Snapshot) resolveSurcharge(location string) decimal.Decimal {
	// Synonym rows all carry the same liters, so first hit wins.
	for _, sc := range s.Surcharges {
		if similarity.FuzzyMatch(location, sc.Location, similarity.DefaultThreshold) {
			return sc.Liters
		}
	}
	return decimal.Zero
}

// ResolveStationCheckpoint looks the station up in the checkpoint map.
// An absent station is a configuration miss surfaced to the caller;
// fabricating a default here would route fuel to the wrong ledger field.
func (s *Snapshot) ResolveStationCheckpoint(station string) (entities.StationCheckpoint, bool) {
	input := strings.TrimSpace(station)
	for _, m := range s.StationMaps {
		if strings.EqualFold(m.Station, input) {
			return m, true
		}
	}
	return entities.StationCheckpoint{}, false
}

// DefaultExtraFuelLiters exposes the fallback tier for callers that
// need to display it.
func DefaultExtraFuelLiters() decimal.Decimal {
	return defaultExtraFuelLiters
}

// DefaultRouteLiters exposes the fallback route allocation.
func DefaultRouteLiters() decimal.Decimal {
	return defaultRouteLiters
}

func truckSuffix(truckNo string) string {
	fields := strings.Fields(strings.TrimSpace(truckNo))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}

func rankSuggestions(input string, candidates []string, threshold float64) []string {
	type scored struct {
		value string
		score float64
	}

	kept := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score := similarity.Similarity(input, c)
		if score >= threshold {
			kept = append(kept, scored{value: c, score: score})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range kept {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.value)
	}
	return out
}
