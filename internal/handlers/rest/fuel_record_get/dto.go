package fuel_record_get

type FuelRecordResponse struct {
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
