package lpo_forward_post

type LPOForward struct {
	SourceStation string  `json:"source_station"`
	TargetStation string  `json:"target_station"`
	Liters        float64 `json:"liters"`
	Rate          float64 `json:"rate"`
}

type LPOForwardResponse struct {
	Forwarded []LPOEntryDTO `json:"forwarded"`
}

type LPOEntryDTO struct {
	ID      int64   `json:"id"`
	Station string  `json:"station"`
	TruckNo string  `json:"truck_no"`
	Liters  float64 `json:"liters"`
	Rate    float64 `json:"rate"`
	DONo    string  `json:"do_no"`
}
