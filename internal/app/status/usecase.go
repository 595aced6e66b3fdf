package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"zoosim/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	ZooRepo ports.ZooRepository
}

// Execute renders the zoo the way the list view shows it: a count header and
// one line per animal in admission order.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.ZooID) == "" {
		return Response{}, ErrInvalidRequest
	}
	z, err := u.ZooRepo.GetByZooID(ctx, req.ZooID)
	if err != nil {
		return Response{}, err
	}
	resp := Response{
		ZooID:   z.ZooID,
		Header:  z.Header(),
		Count:   z.Count(),
		Lines:   z.Lines(),
		Animals: z.Animals,
		Version: z.Version,
	}
	if !z.UpdatedAt.IsZero() {
		resp.UpdatedAt = z.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}
