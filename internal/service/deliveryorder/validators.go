package deliveryorder

import (
	"strings"

	"fuelops/internal/entities"
)

func isValidOrderNo(orderNo string) bool {
	return strings.TrimSpace(orderNo) != ""
}

func isValidTruckNo(truckNo string) bool {
	return strings.TrimSpace(truckNo) != ""
}

func isValidOrderType(t entities.OrderType) bool {
	switch t {
	case entities.OrderTypeDO, entities.OrderTypeSDO:
		return true
	default:
		return false
	}
}

func isValidDirection(d entities.OrderDirection) bool {
	switch d {
	case entities.DirectionGoing, entities.DirectionReturning:
		return true
	default:
		return false
	}
}

// NormalizeTruckNo upper-cases a free-text truck number and collapses
// internal whitespace so the same truck always keys the same records.
func NormalizeTruckNo(truckNo string) string {
	return strings.Join(strings.Fields(strings.ToUpper(truckNo)), " ")
}
