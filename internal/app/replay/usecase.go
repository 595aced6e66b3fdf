package replay

import (
	"context"
	"errors"
	"strings"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.ZooID) == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByZooID(ctx, req.ZooID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	latest := reconstruct(events)
	return Response{
		Events:       events,
		LatestHeader: latest.Header(),
		LatestLines:  latest.Lines(),
	}, nil
}

func filterByTimeWindow(events []zoo.DomainEvent, from, to int64) []zoo.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]zoo.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct rebuilds the roster from the newest event carrying a
// state_after snapshot. Events are expected newest first.
func reconstruct(events []zoo.DomainEvent) zoo.Zoo {
	out := zoo.New("")
	for _, evt := range events {
		rows, ok := snapshotRows(evt.Payload["state_after"])
		if !ok {
			continue
		}
		for _, row := range rows {
			out.Animals = append(out.Animals, &zoo.Animal{
				ID:          str(row["id"]),
				Name:        str(row["name"]),
				Species:     str(row["species"]),
				Weight:      num(row["weight"]),
				HungerLevel: num(row["hunger_level"]),
			})
		}
		return out
	}
	return out
}

// snapshotRows accepts both the in-process shape and the shape produced by a
// JSON round trip.
func snapshotRows(v any) ([]map[string]any, bool) {
	switch rows := v.(type) {
	case []map[string]any:
		return rows, true
	case []any:
		out := make([]map[string]any, 0, len(rows))
		for _, r := range rows {
			if m, ok := r.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
