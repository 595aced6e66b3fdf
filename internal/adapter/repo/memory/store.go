package memory

import (
	"context"
	"sync"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"
)

// Store keeps every zoo of the running process. Repositories share one Store;
// the TxManager serializes writers on its mutex.
type Store struct {
	mu        sync.RWMutex
	zoos      map[string]zoo.Zoo
	execution map[string]ports.CareExecutionRecord
	events    map[string][]zoo.DomainEvent
}

func NewStore() *Store {
	return &Store{
		zoos:      make(map[string]zoo.Zoo),
		execution: make(map[string]ports.CareExecutionRecord),
		events:    make(map[string][]zoo.DomainEvent),
	}
}

func execKey(zooID, key string) string {
	return zooID + "::" + key
}

func (s *Store) SeedZoo(z zoo.Zoo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoos[z.ZooID] = z.Clone()
}

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey).(bool)
	return v
}

// read runs fn under the read lock unless the caller already holds the
// store through RunInTx.
func (s *Store) read(ctx context.Context, fn func()) {
	if inTx(ctx) {
		fn()
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

func (s *Store) write(ctx context.Context, fn func()) {
	if inTx(ctx) {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

type snapshot struct {
	zoos      map[string]zoo.Zoo
	execution map[string]ports.CareExecutionRecord
	events    map[string][]zoo.DomainEvent
}

func (s *Store) snapshot() snapshot {
	out := snapshot{
		zoos:      make(map[string]zoo.Zoo, len(s.zoos)),
		execution: make(map[string]ports.CareExecutionRecord, len(s.execution)),
		events:    make(map[string][]zoo.DomainEvent, len(s.events)),
	}
	for k, v := range s.zoos {
		out.zoos[k] = v
	}
	for k, v := range s.execution {
		out.execution[k] = v
	}
	for k, v := range s.events {
		out.events[k] = v
	}
	return out
}

func (s *Store) restore(snap snapshot) {
	s.zoos = snap.zoos
	s.execution = snap.execution
	s.events = snap.events
}
