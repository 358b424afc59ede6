package fuelconfig

import "time"

type TruckBatchDB struct {
	ID        int64
	Suffix    string
	Batch     string
	Liters    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RouteDB struct {
	ID          int64
	Destination string
	Liters      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SurchargeDB struct {
	ID        int64
	Location  string
	Liters    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StationCheckpointDB struct {
	ID         int64
	Station    string
	Checkpoint string
	Direction  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
