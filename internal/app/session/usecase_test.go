package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"

	"github.com/google/uuid"
)

func TestUseCase_OpensEmptyZoo(t *testing.T) {
	repo := &sessionZooRepo{}
	events := &sessionEventRepo{}
	uc := UseCase{
		TxManager: sessionTx{},
		ZooRepo:   repo,
		EventRepo: events,
		NewID:     func() string { return "zoo-1" },
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}
	resp, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.ZooID != "zoo-1" || resp.Header != "Animals: 0" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if repo.saved.Version != 1 || repo.expected != 0 {
		t.Fatalf("expected first save at version 1 from 0, got version=%d expected=%d", repo.saved.Version, repo.expected)
	}
}

func TestUseCase_RecordsOpenedEvent(t *testing.T) {
	events := &sessionEventRepo{}
	uc := UseCase{
		TxManager: sessionTx{},
		ZooRepo:   &sessionZooRepo{},
		EventRepo: events,
		NewID:     func() string { return "zoo-1" },
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}
	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if events.zooID != "zoo-1" || len(events.appended) != 1 {
		t.Fatalf("expected one event for zoo-1, got zoo=%q events=%+v", events.zooID, events.appended)
	}
	evt := events.appended[0]
	if evt.Type != zoo.EventZooOpened || evt.Payload["zoo_id"] != "zoo-1" || evt.Payload["count"] != 0 {
		t.Fatalf("unexpected opened event: %+v", evt)
	}
	if !evt.OccurredAt.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("unexpected occurred_at: %v", evt.OccurredAt)
	}
}

func TestUseCase_DefaultsToUUID(t *testing.T) {
	uc := UseCase{TxManager: sessionTx{}, ZooRepo: &sessionZooRepo{}, EventRepo: &sessionEventRepo{}}
	resp, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := uuid.Parse(resp.ZooID); err != nil {
		t.Fatalf("expected uuid zoo id, got %q: %v", resp.ZooID, err)
	}
}

func TestUseCase_PropagatesSaveError(t *testing.T) {
	events := &sessionEventRepo{}
	uc := UseCase{TxManager: sessionTx{}, ZooRepo: &sessionZooRepo{err: ports.ErrConflict}, EventRepo: events}
	if _, err := uc.Execute(context.Background()); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(events.appended) != 0 {
		t.Fatalf("expected no events after failed save, got %d", len(events.appended))
	}
}

type sessionTx struct{}

func (sessionTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type sessionZooRepo struct {
	saved    zoo.Zoo
	expected int64
	err      error
}

func (r *sessionZooRepo) GetByZooID(_ context.Context, _ string) (zoo.Zoo, error) {
	return zoo.Zoo{}, ports.ErrNotFound
}

func (r *sessionZooRepo) SaveWithVersion(_ context.Context, z zoo.Zoo, expectedVersion int64) error {
	if r.err != nil {
		return r.err
	}
	r.saved = z
	r.expected = expectedVersion
	return nil
}

type sessionEventRepo struct {
	zooID    string
	appended []zoo.DomainEvent
}

func (r *sessionEventRepo) Append(_ context.Context, zooID string, events []zoo.DomainEvent) error {
	r.zooID = zooID
	r.appended = append(r.appended, events...)
	return nil
}

func (r *sessionEventRepo) ListByZooID(_ context.Context, _ string, _ int) ([]zoo.DomainEvent, error) {
	return nil, ports.ErrNotFound
}

var (
	_ ports.TxManager       = sessionTx{}
	_ ports.ZooRepository   = (*sessionZooRepo)(nil)
	_ ports.EventRepository = (*sessionEventRepo)(nil)
)
