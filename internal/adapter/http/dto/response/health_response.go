package response

import "time"

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
	Storage   string    `json:"storage"`
	Gateway   string    `json:"gateway"`
}
