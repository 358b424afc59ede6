package lpo_post

type LPOCreate struct {
	Station           string  `json:"station"`
	TruckNo           string  `json:"truck_no"`
	Liters            float64 `json:"liters"`
	Rate              float64 `json:"rate"`
	DONo              string  `json:"do_no,omitempty"`
	CancellationPoint string  `json:"cancellation_point,omitempty"`
	DriversAccount    bool    `json:"drivers_account,omitempty"`
}

type LPOResponse struct {
	ID                int64   `json:"id"`
	Station           string  `json:"station"`
	TruckNo           string  `json:"truck_no"`
	Liters            float64 `json:"liters"`
	Rate              float64 `json:"rate"`
	DONo              string  `json:"do_no"`
	CancellationPoint string  `json:"cancellation_point,omitempty"`
	DriversAccount    bool    `json:"drivers_account"`
	Cancelled         bool    `json:"cancelled"`
}
