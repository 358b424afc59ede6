package autofill_post

type AutoFillRequest struct {
	TruckNo string `json:"truck_no"`
	Station string `json:"station"`
}

type AutoFillResponse struct {
	Direction   DirectionDTO   `json:"direction"`
	TotalLiters TotalLitersDTO `json:"total_liters"`
	ExtraFuel   ExtraFuelDTO   `json:"extra_fuel"`
	Additional  float64        `json:"additional"`
}

type DirectionDTO struct {
	DONo       string `json:"do_no"`
	Direction  string `json:"direction"`
	Checkpoint string `json:"checkpoint"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
}

type TotalLitersDTO struct {
	Liters       float64  `json:"liters"`
	Matched      bool     `json:"matched"`
	MatchType    string   `json:"match_type"`
	MatchedRoute string   `json:"matched_route,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

type ExtraFuelDTO struct {
	Liters      float64  `json:"liters"`
	Matched     bool     `json:"matched"`
	Batch       string   `json:"batch,omitempty"`
	Suffix      string   `json:"suffix,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}
