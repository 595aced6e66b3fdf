package memory

import (
	"context"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"
)

type ZooRepo struct {
	store *Store
}

func NewZooRepo(store *Store) ZooRepo {
	return ZooRepo{store: store}
}

func (r ZooRepo) GetByZooID(ctx context.Context, zooID string) (zoo.Zoo, error) {
	var (
		out zoo.Zoo
		ok  bool
	)
	r.store.read(ctx, func() {
		out, ok = r.store.zoos[zooID]
		if ok {
			out = out.Clone()
		}
	})
	if !ok {
		return zoo.Zoo{}, ports.ErrNotFound
	}
	return out, nil
}

func (r ZooRepo) SaveWithVersion(ctx context.Context, z zoo.Zoo, expectedVersion int64) error {
	var err error
	r.store.write(ctx, func() {
		current, ok := r.store.zoos[z.ZooID]
		if !ok {
			if expectedVersion != 0 {
				err = ports.ErrConflict
				return
			}
			r.store.zoos[z.ZooID] = z.Clone()
			return
		}
		if current.Version != expectedVersion {
			err = ports.ErrConflict
			return
		}
		r.store.zoos[z.ZooID] = z.Clone()
	})
	return err
}
