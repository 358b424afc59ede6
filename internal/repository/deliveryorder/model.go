package deliveryorder

import "time"

type DeliveryOrderDB struct {
	ID           int64
	OrderNo      string
	OrderType    string
	TruckNo      string
	Direction    string
	LoadingPoint string
	Destination  string
	OrderDate    time.Time
	Cancelled    bool
	CancelReason string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DeliveryOrderModifyDB struct {
	ID           *int64
	OrderNo      *string
	OrderType    *string
	TruckNo      *string
	Direction    *string
	LoadingPoint *string
	Destination  *string
	OrderDate    *time.Time
	Cancelled    *bool
	CancelReason *string
}
