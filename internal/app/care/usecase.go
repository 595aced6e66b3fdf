package care

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"
)

var (
	ErrInvalidRequest = errors.New("invalid care request")
	ErrKeyReused      = fmt.Errorf("%w: idempotency key reused for a different intent", ports.ErrConflict)
)

type UseCase struct {
	TxManager  ports.TxManager
	ZooRepo    ports.ZooRepository
	ActionRepo ports.CareExecutionRepository
	EventRepo  ports.EventRepository
	Metrics    ports.CareMetrics
	Rand       zoo.Rand
	Now        func() time.Time
	Logger     *log.Logger
}

// Execute applies one care intent to every animal of the zoo. A repeated
// idempotency key returns the stored result without touching the zoo again.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.ZooID = strings.TrimSpace(req.ZooID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Intent.Type = zoo.CareType(strings.TrimSpace(string(req.Intent.Type)))
	req.Intent.AnimalID = strings.TrimSpace(req.Intent.AnimalID)
	if req.ZooID == "" || req.IdempotencyKey == "" || !isSupportedCareType(req.Intent.Type) {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rng := u.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(nowFn().UnixNano()))
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.ActionRepo.GetByIdempotencyKey(txCtx, req.ZooID, req.IdempotencyKey)
		if err == nil && exec != nil {
			if exec.IntentType != string(req.Intent.Type) || exec.AnimalID != req.Intent.AnimalID {
				return ErrKeyReused
			}
			out = responseFrom(exec.Result.UpdatedZoo, exec.Result.Events, exec.Result.ResultCode)
			out.HungerReduction = exec.Result.HungerReduction
			out.Removed = exec.Result.Removed
			out.Replayed = true
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		current, err := u.ZooRepo.GetByZooID(txCtx, req.ZooID)
		if err != nil {
			return err
		}

		result, err := zoo.Apply(current, req.Intent, rng, nowFn)
		if err != nil {
			return err
		}
		for i := range result.Events {
			if result.Events[i].Payload == nil {
				result.Events[i].Payload = map[string]any{}
			}
			result.Events[i].Payload["zoo_id"] = req.ZooID
			result.Events[i].Payload["idempotency_key"] = req.IdempotencyKey
		}

		if err := u.ZooRepo.SaveWithVersion(txCtx, result.UpdatedZoo, current.Version); err != nil {
			return err
		}

		hungerReduction := 0.0
		if result.Fed != nil {
			hungerReduction = result.Fed.HungerReduction()
		}
		execution := ports.CareExecutionRecord{
			ZooID:          req.ZooID,
			IdempotencyKey: req.IdempotencyKey,
			IntentType:     string(req.Intent.Type),
			AnimalID:       req.Intent.AnimalID,
			Result: ports.CareResult{
				UpdatedZoo:      result.UpdatedZoo,
				Events:          result.Events,
				ResultCode:      result.ResultCode,
				HungerReduction: hungerReduction,
				Removed:         result.Removed,
			},
			AppliedAt: nowFn(),
		}
		if err := u.ActionRepo.SaveExecution(txCtx, execution); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.ZooID, result.Events); err != nil {
			return err
		}

		out = responseFrom(result.UpdatedZoo, result.Events, result.ResultCode)
		out.HungerReduction = hungerReduction
		out.Removed = result.Removed
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil && !out.Replayed {
		u.Metrics.RecordSuccess(req.Intent.Type, out.ResultCode)
	}
	if u.Logger != nil && out.Removed != nil && !out.Replayed {
		u.Logger.Printf("zoo %s fed %s the %s to %d animals", req.ZooID, out.Removed.Name, out.Removed.Species, len(out.UpdatedZoo.Animals))
	}

	return out, nil
}

func responseFrom(z zoo.Zoo, events []zoo.DomainEvent, code zoo.ResultCode) Response {
	return Response{
		UpdatedZoo: z,
		Header:     z.Header(),
		Lines:      z.Lines(),
		Events:     events,
		ResultCode: code,
	}
}

func isSupportedCareType(t zoo.CareType) bool {
	switch t {
	case zoo.CareFeedFruit, zoo.CareFeedMeat, zoo.CarePassTime:
		return true
	default:
		return false
	}
}
