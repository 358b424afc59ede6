package route_put

type RouteUpsert struct {
	Destination string  `json:"destination"`
	Liters      float64 `json:"liters"`
}

type RouteResponse struct {
	ID          int64   `json:"id"`
	Destination string  `json:"destination"`
	Liters      float64 `json:"liters"`
}
