package memory

import (
	"context"

	"zoosim/internal/app/ports"
)

type CareExecutionRepo struct {
	store *Store
}

func NewCareExecutionRepo(store *Store) CareExecutionRepo {
	return CareExecutionRepo{store: store}
}

func (r CareExecutionRepo) GetByIdempotencyKey(ctx context.Context, zooID, key string) (*ports.CareExecutionRecord, error) {
	var (
		rec ports.CareExecutionRecord
		ok  bool
	)
	r.store.read(ctx, func() {
		rec, ok = r.store.execution[execKey(zooID, key)]
	})
	if !ok {
		return nil, ports.ErrNotFound
	}
	rec.Result = cloneResult(rec.Result)
	return &rec, nil
}

func (r CareExecutionRepo) SaveExecution(ctx context.Context, execution ports.CareExecutionRecord) error {
	var err error
	r.store.write(ctx, func() {
		k := execKey(execution.ZooID, execution.IdempotencyKey)
		if _, exists := r.store.execution[k]; exists {
			err = ports.ErrConflict
			return
		}
		execution.Result = cloneResult(execution.Result)
		r.store.execution[k] = execution
	})
	return err
}

func cloneResult(r ports.CareResult) ports.CareResult {
	r.UpdatedZoo = r.UpdatedZoo.Clone()
	if r.Removed != nil {
		removed := *r.Removed
		r.Removed = &removed
	}
	return r
}
