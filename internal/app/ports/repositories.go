package ports

import (
	"context"
	"time"

	"zoosim/internal/domain/zoo"
)

type CareResult struct {
	UpdatedZoo      zoo.Zoo
	Events          []zoo.DomainEvent
	ResultCode      zoo.ResultCode
	HungerReduction float64
	Removed         *zoo.Animal
}

type CareExecutionRecord struct {
	ZooID          string
	IdempotencyKey string
	IntentType     string
	AnimalID       string
	Result         CareResult
	AppliedAt      time.Time
}

type ZooRepository interface {
	GetByZooID(ctx context.Context, zooID string) (zoo.Zoo, error)
	SaveWithVersion(ctx context.Context, z zoo.Zoo, expectedVersion int64) error
}

type CareExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, zooID, key string) (*CareExecutionRecord, error)
	SaveExecution(ctx context.Context, execution CareExecutionRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, zooID string, events []zoo.DomainEvent) error
	ListByZooID(ctx context.Context, zooID string, limit int) ([]zoo.DomainEvent, error)
}
