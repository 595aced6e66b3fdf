package memory

import (
	"context"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, zooID string, events []zoo.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.write(ctx, func() {
		existing := r.store.events[zooID]
		next := make([]zoo.DomainEvent, 0, len(existing)+len(events))
		next = append(next, existing...)
		r.store.events[zooID] = append(next, events...)
	})
	return nil
}

// ListByZooID returns the newest events first, at most limit of them when
// limit is positive.
func (r EventRepo) ListByZooID(ctx context.Context, zooID string, limit int) ([]zoo.DomainEvent, error) {
	var out []zoo.DomainEvent
	r.store.read(ctx, func() {
		events := r.store.events[zooID]
		out = make([]zoo.DomainEvent, 0, len(events))
		for i := len(events) - 1; i >= 0; i-- {
			out = append(out, events[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	})
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	return out, nil
}
