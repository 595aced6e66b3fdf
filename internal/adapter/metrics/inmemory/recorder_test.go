package inmemory

import (
	"testing"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(zoo.CareFeedFruit, zoo.ResultOK)
	r.RecordSuccess(zoo.CareFeedMeat, zoo.ResultEmpty)
	r.RecordSuccess(zoo.CareFeedFruit, zoo.ResultOK)
	r.RecordConflict()
	r.RecordFailure()

	s := r.Snapshot()
	if s.CareTotal != 5 {
		t.Fatalf("expected total 5, got %d", s.CareTotal)
	}
	if s.CareSuccess != 3 {
		t.Fatalf("expected success 3, got %d", s.CareSuccess)
	}
	if s.CareConflict != 1 {
		t.Fatalf("expected conflict 1, got %d", s.CareConflict)
	}
	if s.CareFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.CareFailure)
	}
	if s.ByIntent[string(zoo.CareFeedFruit)] != 2 {
		t.Fatalf("expected feed_fruit count 2")
	}
	if s.ByResultCode[string(zoo.ResultEmpty)] != 1 {
		t.Fatalf("expected result EMPTY count 1")
	}
}

func TestRecorderSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(zoo.CarePassTime, zoo.ResultOK)
	s := r.Snapshot()
	s.ByIntent[string(zoo.CarePassTime)] = 99
	if got := r.Snapshot().ByIntent[string(zoo.CarePassTime)]; got != 1 {
		t.Fatalf("snapshot mutation leaked into recorder: %d", got)
	}
}

var _ ports.CareMetrics = (*Recorder)(nil)
