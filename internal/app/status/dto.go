package status

import "zoosim/internal/domain/zoo"

type Request struct {
	ZooID string
}

type Response struct {
	ZooID     string        `json:"zoo_id"`
	Header    string        `json:"header"`
	Count     int           `json:"count"`
	Lines     []string      `json:"lines"`
	Animals   []*zoo.Animal `json:"animals"`
	Version   int64         `json:"version"`
	UpdatedAt string        `json:"updated_at,omitempty"`
}
