package direction_get

type DirectionResponse struct {
	DONo       string `json:"do_no"`
	Direction  string `json:"direction"`
	Checkpoint string `json:"checkpoint"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
}
