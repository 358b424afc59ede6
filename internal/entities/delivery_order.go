package entities

import "time"

// DeliveryOrder is one leg of a truck's round trip. IMPORT orders take
// cargo out (going leg), EXPORT orders bring it back (returning leg).
type DeliveryOrder struct {
	ID           int64
	OrderNo      string
	OrderType    OrderType
	TruckNo      string
	Direction    OrderDirection
	LoadingPoint string
	Destination  string
	OrderDate    time.Time
	Cancelled    bool
	CancelReason string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderType string

const (
	OrderTypeDO  OrderType = "DO"
	OrderTypeSDO OrderType = "SDO"
)

func (t OrderType) String() string {
	return string(t)
}

type OrderDirection string

const (
	DirectionGoing     OrderDirection = "IMPORT"
	DirectionReturning OrderDirection = "EXPORT"
)

func (d OrderDirection) String() string {
	return string(d)
}

type DeliveryOrderModify struct {
	ID           *int64
	OrderNo      *string
	OrderType    *OrderType
	TruckNo      *string
	Direction    *OrderDirection
	LoadingPoint *string
	Destination  *string
	OrderDate    *time.Time
	Cancelled    *bool
	CancelReason *string
}

// DOChangeKind tags a mutating delivery-order event for the cascade
// table. Each kind maps to an ordered list of ledger side effects.
type DOChangeKind string

const (
	DOTruckNoChanged     DOChangeKind = "truck_no_changed"
	DODestinationChanged DOChangeKind = "destination_changed"
	DOCancelled          DOChangeKind = "cancelled"
)

func (k DOChangeKind) String() string {
	return string(k)
}

// DOChangeEvent is the payload the consistency cascades consume, either
// directly from the PUT/cancel handlers or from the do.changed topic.
type DOChangeEvent struct {
	OrderNo     string
	Kind        DOChangeKind
	OldTruckNo  string
	NewTruckNo  string
	Destination string
	Reason      string
}
