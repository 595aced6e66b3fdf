package zoo

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidAnimal     = errors.New("animal's values were not all valid")
	ErrNoSelection       = errors.New("no animal is selected")
	ErrNotEnoughAnimals  = errors.New("not enough animals to feed one to the others")
	ErrAnimalNotFound    = errors.New("animal not found")
	ErrDuplicateAnimalID = errors.New("duplicate animal id")
	ErrUnsupportedCare   = errors.New("unsupported care intent")
)

const (
	EventZooOpened         = "zoo_opened"
	EventAnimalAdmitted    = "animal_admitted"
	EventFruitFed          = "fruit_fed"
	EventAnimalSlaughtered = "animal_slaughtered"
	EventMeatFed           = "meat_fed"
	EventTimePassed        = "time_passed"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// Zoo is the aggregate root: an ordered roster of animals plus the version
// used for optimistic saves.
type Zoo struct {
	ZooID     string    `json:"zoo_id"`
	Animals   []*Animal `json:"animals"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(zooID string) Zoo {
	return Zoo{ZooID: zooID, Animals: []*Animal{}}
}

func (z *Zoo) Count() int {
	return len(z.Animals)
}

func (z *Zoo) Header() string {
	return fmt.Sprintf("Animals: %d", len(z.Animals))
}

func (z *Zoo) Lines() []string {
	out := make([]string, 0, len(z.Animals))
	for _, a := range z.Animals {
		out = append(out, a.String())
	}
	return out
}

func (z *Zoo) Find(animalID string) (*Animal, int) {
	for i, a := range z.Animals {
		if a.ID == animalID {
			return a, i
		}
	}
	return nil, -1
}

// Clone deep-copies the roster so callers can mutate without touching a
// stored aggregate.
func (z Zoo) Clone() Zoo {
	out := z
	out.Animals = make([]*Animal, 0, len(z.Animals))
	for _, a := range z.Animals {
		cp := *a
		out.Animals = append(out.Animals, &cp)
	}
	return out
}

// Opened records the empty roster a session starts with.
func (z *Zoo) Opened(now time.Time) []DomainEvent {
	return []DomainEvent{{
		Type:       EventZooOpened,
		OccurredAt: now,
		Payload: map[string]any{
			"count":       len(z.Animals),
			"state_after": z.snapshots(),
		},
	}}
}

func (z *Zoo) Admit(animal *Animal, now time.Time) ([]DomainEvent, error) {
	if animal == nil || !animal.IsValid() {
		return nil, ErrInvalidAnimal
	}
	if animal.ID != "" {
		if existing, _ := z.Find(animal.ID); existing != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAnimalID, animal.ID)
		}
	}
	z.Animals = append(z.Animals, animal)
	return []DomainEvent{{
		Type:       EventAnimalAdmitted,
		OccurredAt: now,
		Payload: map[string]any{
			"animal":      animal.snapshot(),
			"count":       len(z.Animals),
			"state_after": z.snapshots(),
		},
	}}, nil
}

// FeedFruit gives the same piece of fruit to every animal in roster order.
func (z *Zoo) FeedFruit(fruit Fruit, now time.Time) []DomainEvent {
	before := z.snapshots()
	for _, a := range z.Animals {
		a.Feed(fruit)
	}
	return []DomainEvent{{
		Type:       EventFruitFed,
		OccurredAt: now,
		Payload: map[string]any{
			"hunger_reduction": fruit.HungerReduction(),
			"state_before":     before,
			"state_after":      z.snapshots(),
		},
	}}
}

// FeedMeat removes the selected animal and feeds its meat to the rest.
func (z *Zoo) FeedMeat(animalID string, now time.Time) (*Animal, []DomainEvent, error) {
	if len(z.Animals) <= 1 {
		return nil, nil, ErrNotEnoughAnimals
	}
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, nil, ErrNoSelection
	}
	selected, idx := z.Find(animalID)
	if selected == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAnimalNotFound, animalID)
	}

	z.Animals = append(z.Animals[:idx:idx], z.Animals[idx+1:]...)
	meat := NewMeat(selected)

	before := z.snapshots()
	for _, a := range z.Animals {
		a.Feed(meat)
	}

	events := []DomainEvent{
		{
			Type:       EventAnimalSlaughtered,
			OccurredAt: now,
			Payload: map[string]any{
				"animal":      selected.snapshot(),
				"count":       len(z.Animals),
				"state_after": before,
			},
		},
		{
			Type:       EventMeatFed,
			OccurredAt: now,
			Payload: map[string]any{
				"source_id":        selected.ID,
				"hunger_reduction": meat.HungerReduction(),
				"state_before":     before,
				"state_after":      z.snapshots(),
			},
		},
	}
	return selected, events, nil
}

// PassTime lets every animal wait one step.
func (z *Zoo) PassTime(rng Rand, now time.Time) []DomainEvent {
	before := z.snapshots()
	for _, a := range z.Animals {
		a.Wait(rng)
	}
	return []DomainEvent{{
		Type:       EventTimePassed,
		OccurredAt: now,
		Payload: map[string]any{
			"state_before": before,
			"state_after":  z.snapshots(),
		},
	}}
}

func (z *Zoo) snapshots() []map[string]any {
	out := make([]map[string]any, 0, len(z.Animals))
	for _, a := range z.Animals {
		out = append(out, a.snapshot())
	}
	return out
}
