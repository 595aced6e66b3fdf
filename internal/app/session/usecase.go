package session

import (
	"context"
	"time"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"

	"github.com/google/uuid"
)

type UseCase struct {
	TxManager ports.TxManager
	ZooRepo   ports.ZooRepository
	EventRepo ports.EventRepository
	NewID     func() string
	Now       func() time.Time
}

type Response struct {
	ZooID  string `json:"zoo_id"`
	Header string `json:"header"`
}

// Execute opens an empty zoo, the equivalent of launching a fresh window.
// The zoo_opened event gives replay a starting point before any admission.
func (u UseCase) Execute(ctx context.Context) (Response, error) {
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	z := zoo.New(newID())
	z.Version = 1
	z.UpdatedAt = nowFn()
	events := z.Opened(z.UpdatedAt)
	for i := range events {
		events[i].Payload["zoo_id"] = z.ZooID
	}

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.ZooRepo.SaveWithVersion(txCtx, z, 0); err != nil {
			return err
		}
		return u.EventRepo.Append(txCtx, z.ZooID, events)
	})
	if err != nil {
		return Response{}, err
	}
	return Response{ZooID: z.ZooID, Header: z.Header()}, nil
}
