package fuelrecord

import "time"

// FuelRecordDB mirrors the fuel_records row. Liter quantities travel as
// float64 at the database edge and become decimals in the converters.
type FuelRecordDB struct {
	ID               int64
	TruckNo          string
	GoingDO          string
	ReturnDO         string
	Yard             float64
	Kitwe            float64
	Chingola         float64
	Kasumbalesa      float64
	Likasi           float64
	Fungurume        float64
	NdolaReturn      float64
	KapiriReturn     float64
	TotalLiters      float64
	Extra            float64
	ReturnAdditional float64
	Balance          float64
	State            string
	Locked           bool
	LockReason       string
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
