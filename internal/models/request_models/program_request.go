package request_models

import "encoding/json"

type SaveProgramRequest struct {
	Destination string          `json:"destination" binding:"required"`
	Budget      float64         `json:"budget"`
	CheckIn     string          `json:"checkInDate" binding:"required"`
	CheckOut    string          `json:"checkOutDate" binding:"required"`
	Interests   []string        `json:"interests"`
	Plan        json.RawMessage `json:"plan" binding:"required"`
}
