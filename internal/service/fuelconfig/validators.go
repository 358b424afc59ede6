package fuelconfig

import (
	"strings"

	"fuelops/internal/entities"
)

func isValidLocation(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidDirection(d entities.CheckpointDirection) bool {
	switch d {
	case entities.CheckpointGoing, entities.CheckpointReturning, entities.CheckpointBoth:
		return true
	default:
		return false
	}
}
