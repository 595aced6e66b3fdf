package admit

import "zoosim/internal/domain/zoo"

type Request struct {
	ZooID   string
	Name    string
	Species string
	Weight  float64
}

type Response struct {
	Animal zoo.Animal        `json:"animal"`
	Header string            `json:"header"`
	Events []zoo.DomainEvent `json:"events"`
}
