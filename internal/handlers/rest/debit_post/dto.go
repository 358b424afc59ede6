package debit_post

type DebitRequest struct {
	TruckNo string  `json:"truck_no"`
	Station string  `json:"station"`
	Liters  float64 `json:"liters"`
}

type DebitResponse struct {
	Record    *FuelRecordDTO `json:"record,omitempty"`
	Direction *DirectionDTO  `json:"direction,omitempty"`
	// Manual is set when the fill could not be classified and nothing
	// was debited.
	Manual bool `json:"manual"`
}

type DirectionDTO struct {
	DONo       string `json:"do_no"`
	Direction  string `json:"direction"`
	Checkpoint string `json:"checkpoint"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
}

type FuelRecordDTO struct {
	ID               int64              `json:"id"`
	TruckNo          string             `json:"truck_no"`
	GoingDO          string             `json:"going_do"`
	ReturnDO         string             `json:"return_do,omitempty"`
	Checkpoints      map[string]float64 `json:"checkpoints"`
	TotalLiters      float64            `json:"total_liters"`
	Extra            float64            `json:"extra"`
	ReturnAdditional float64            `json:"return_additional"`
	Balance          float64            `json:"balance"`
	State            string             `json:"state"`
	Locked           bool               `json:"locked"`
	LockReason       string             `json:"lock_reason,omitempty"`
	Version          int64              `json:"version"`
}
