package delivery_order_post

import "time"

type DeliveryOrderCreate struct {
	OrderNo      string     `json:"order_no"`
	OrderType    string     `json:"order_type"`
	TruckNo      string     `json:"truck_no"`
	Direction    string     `json:"direction"`
	LoadingPoint string     `json:"loading_point"`
	Destination  string     `json:"destination"`
	OrderDate    *time.Time `json:"order_date,omitempty"`
}

type DeliveryOrderResponse struct {
	ID           int64     `json:"id"`
	OrderNo      string    `json:"order_no"`
	OrderType    string    `json:"order_type"`
	TruckNo      string    `json:"truck_no"`
	Direction    string    `json:"direction"`
	LoadingPoint string    `json:"loading_point"`
	Destination  string    `json:"destination"`
	OrderDate    time.Time `json:"order_date"`
	Cancelled    bool      `json:"cancelled"`
}
