package replay

import "zoosim/internal/domain/zoo"

type Request struct {
	ZooID        string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events       []zoo.DomainEvent `json:"events"`
	LatestHeader string            `json:"latest_header"`
	LatestLines  []string          `json:"latest_lines"`
}
