package ping_get

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
