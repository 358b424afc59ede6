package entities

import "github.com/shopspring/decimal"

// Confidence grades a journey-direction resolution.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) String() string {
	return string(c)
}

// DirectionResult is the outcome of classifying a fill against the
// truck's active delivery orders. A nil result means unresolvable and
// the caller falls back to manual entry.
type DirectionResult struct {
	DONo       string
	Direction  OrderDirection
	Checkpoint Checkpoint
	Confidence Confidence
	Reason     string
}

// ExtraFuelResult is the truck-batch allowance resolution.
type ExtraFuelResult struct {
	Liters      decimal.Decimal
	Matched     bool
	Batch       string
	Suffix      string
	Suggestions []string
}

type RouteMatchType string

const (
	RouteMatchExact   RouteMatchType = "exact"
	RouteMatchPartial RouteMatchType = "partial"
	RouteMatchFuzzy   RouteMatchType = "fuzzy"
	RouteMatchDefault RouteMatchType = "default"
)

func (t RouteMatchType) String() string {
	return string(t)
}

// RouteLitersResult is the total-liters resolution for a destination.
type RouteLitersResult struct {
	Liters       decimal.Decimal
	Matched      bool
	MatchType    RouteMatchType
	MatchedRoute string
	Suggestions  []string
}

// AutoFillResult combines direction resolution with the numeric
// configuration a dispatcher needs to record the fill.
type AutoFillResult struct {
	Direction   DirectionResult
	TotalLiters RouteLitersResult
	ExtraFuel   ExtraFuelResult
	// Additional is the return-leg top-up; zero on going legs.
	Additional decimal.Decimal
}
