package zoo

import "time"

type Clock func() time.Time

type CareType string

const (
	CareFeedFruit CareType = "feed_fruit"
	CareFeedMeat  CareType = "feed_meat"
	CarePassTime  CareType = "pass_time"
)

type CareIntent struct {
	Type     CareType `json:"type"`
	AnimalID string   `json:"animal_id,omitempty"`
}

type ResultCode string

const (
	ResultOK    ResultCode = "OK"
	ResultEmpty ResultCode = "EMPTY"
)

type CareResult struct {
	UpdatedZoo Zoo           `json:"updated_zoo"`
	Events     []DomainEvent `json:"events"`
	ResultCode ResultCode    `json:"result_code"`
	Fed        Edible        `json:"-"`
	Removed    *Animal       `json:"removed,omitempty"`
}

// Apply runs a care intent against a copy of z and returns the result. The
// input zoo is left untouched.
func Apply(z Zoo, intent CareIntent, rng Rand, now Clock) (CareResult, error) {
	if now == nil {
		now = time.Now
	}
	next := z.Clone()
	at := now()
	var (
		events  []DomainEvent
		fed     Edible
		removed *Animal
	)
	switch intent.Type {
	case CareFeedFruit:
		fruit := RandomFruit(rng)
		fed = fruit
		events = next.FeedFruit(fruit, at)
	case CareFeedMeat:
		animal, evts, err := next.FeedMeat(intent.AnimalID, at)
		if err != nil {
			return CareResult{}, err
		}
		fed, removed, events = NewMeat(animal), animal, evts
	case CarePassTime:
		events = next.PassTime(rng, at)
	default:
		return CareResult{}, ErrUnsupportedCare
	}

	next.Version = z.Version + 1
	next.UpdatedAt = at
	code := ResultOK
	if next.Count() == 0 {
		code = ResultEmpty
	}
	return CareResult{
		UpdatedZoo: next,
		Events:     events,
		ResultCode: code,
		Fed:        fed,
		Removed:    removed,
	}, nil
}
