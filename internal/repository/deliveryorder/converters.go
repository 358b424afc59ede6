package deliveryorder

import (
	"github.com/AlekSi/pointer"

	"fuelops/internal/entities"
)

func ToDomain(o *DeliveryOrderDB) *entities.DeliveryOrder {
	if o == nil {
		return nil
	}
	return &entities.DeliveryOrder{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		OrderType:    entities.OrderType(o.OrderType),
		TruckNo:      o.TruckNo,
		Direction:    entities.OrderDirection(o.Direction),
		LoadingPoint: o.LoadingPoint,
		Destination:  o.Destination,
		OrderDate:    o.OrderDate,
		Cancelled:    o.Cancelled,
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func FromDomainModify(o *entities.DeliveryOrderModify) *DeliveryOrderModifyDB {
	if o == nil {
		return nil
	}
	modifyDB := &DeliveryOrderModifyDB{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		TruckNo:      o.TruckNo,
		LoadingPoint: o.LoadingPoint,
		Destination:  o.Destination,
		OrderDate:    o.OrderDate,
		Cancelled:    o.Cancelled,
		CancelReason: o.CancelReason,
	}

	if o.OrderType != nil {
		modifyDB.OrderType = pointer.To(o.OrderType.String())
	}
	if o.Direction != nil {
		modifyDB.Direction = pointer.To(o.Direction.String())
	}

	return modifyDB
}
