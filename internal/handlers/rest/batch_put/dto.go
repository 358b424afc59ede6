package batch_put

type TruckBatchUpsert struct {
	Suffix string  `json:"suffix"`
	Batch  string  `json:"batch"`
	Liters float64 `json:"liters"`
}

type TruckBatchResponse struct {
	ID     int64   `json:"id"`
	Suffix string  `json:"suffix"`
	Batch  string  `json:"batch"`
	Liters float64 `json:"liters"`
}
