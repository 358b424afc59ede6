package delivery_order_cancel_post

type DeliveryOrderCancel struct {
	OrderNo string `json:"order_no"`
	Reason  string `json:"reason,omitempty"`
}
