package admit

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid admit request")

type UseCase struct {
	TxManager ports.TxManager
	ZooRepo   ports.ZooRepository
	EventRepo ports.EventRepository
	NewID     func() string
	Now       func() time.Time
	Logger    *log.Logger
}

// Execute adds an animal to the zoo. Name and species are taken verbatim;
// an animal that fails validation is rejected with zoo.ErrInvalidAnimal and
// the zoo is left as it was.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.ZooID = strings.TrimSpace(req.ZooID)
	if req.ZooID == "" {
		return Response{}, ErrInvalidRequest
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.ZooRepo.GetByZooID(txCtx, req.ZooID)
		if err != nil {
			return err
		}
		next := current.Clone()
		animal := zoo.NewAnimal(newID(), req.Name, req.Species, req.Weight)
		now := nowFn()
		events, err := next.Admit(animal, now)
		if err != nil {
			return err
		}
		next.Version = current.Version + 1
		next.UpdatedAt = now

		if err := u.ZooRepo.SaveWithVersion(txCtx, next, current.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.ZooID, tagEvents(events, req.ZooID)); err != nil {
			return err
		}
		out = Response{Animal: *animal, Header: next.Header(), Events: events}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	if u.Logger != nil {
		u.Logger.Printf("zoo %s admitted %s (%s)", req.ZooID, out.Animal.String(), out.Animal.ID)
	}
	return out, nil
}

func tagEvents(events []zoo.DomainEvent, zooID string) []zoo.DomainEvent {
	for i := range events {
		if events[i].Payload == nil {
			events[i].Payload = map[string]any{}
		}
		events[i].Payload["zoo_id"] = zooID
	}
	return events
}
