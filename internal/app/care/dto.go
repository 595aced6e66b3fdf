package care

import "zoosim/internal/domain/zoo"

type Request struct {
	ZooID          string
	IdempotencyKey string
	Intent         zoo.CareIntent
}

type Response struct {
	UpdatedZoo      zoo.Zoo           `json:"updated_zoo"`
	Header          string            `json:"header"`
	Lines           []string          `json:"lines"`
	Events          []zoo.DomainEvent `json:"events"`
	ResultCode      zoo.ResultCode    `json:"result_code"`
	HungerReduction float64           `json:"hunger_reduction"`
	Removed         *zoo.Animal       `json:"removed,omitempty"`
	Replayed        bool              `json:"replayed,omitempty"`
}
