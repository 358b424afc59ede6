package delivery_order_put

type DeliveryOrderUpdate struct {
	OrderNo     string `json:"order_no"`
	TruckNo     string `json:"truck_no,omitempty"`
	Destination string `json:"destination,omitempty"`
}
