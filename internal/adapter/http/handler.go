package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"zoosim/internal/app/admit"
	"zoosim/internal/app/care"
	"zoosim/internal/app/ports"
	"zoosim/internal/app/replay"
	"zoosim/internal/app/session"
	"zoosim/internal/app/status"
	"zoosim/internal/domain/zoo"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const zooIDHeader = "X-Zoo-ID"

type Handler struct {
	SessionUC session.UseCase
	AdmitUC   admit.UseCase
	CareUC    care.UseCase
	StatusUC  status.UseCase
	ReplayUC  replay.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	s.OPTIONS("/*path", func(context.Context, *app.RequestContext) {})

	api := s.Group("/api/zoo")
	api.POST("", h.open)
	api.POST("/animals", h.admit)
	api.POST("/care", h.care)
	api.GET("/status", h.status)
	api.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.health)
}

type admitRequest struct {
	Name    string   `json:"name"`
	Species string   `json:"species"`
	Weight  *float64 `json:"weight"`
}

type careRequest struct {
	IdempotencyKey string     `json:"idempotency_key"`
	Intent         careIntent `json:"intent"`
}

type careIntent struct {
	Type     string `json:"type"`
	AnimalID string `json:"animal_id,omitempty"`
}

func (h Handler) open(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) admit(c context.Context, ctx *app.RequestContext) {
	zooID, err := requireZooID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body admitRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	weight := 0.0
	if body.Weight != nil {
		weight = *body.Weight
	}

	resp, err := h.AdmitUC.Execute(c, admit.Request{
		ZooID:   zooID,
		Name:    body.Name,
		Species: body.Species,
		Weight:  weight,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) care(c context.Context, ctx *app.RequestContext) {
	zooID, err := requireZooID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body careRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CareUC.Execute(c, care.Request{
		ZooID:          zooID,
		IdempotencyKey: body.IdempotencyKey,
		Intent: zoo.CareIntent{
			Type:     zoo.CareType(body.Intent.Type),
			AnimalID: body.Intent.AnimalID,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	zooID, err := requireZooID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{ZooID: zooID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	zooID, err := requireZooID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		ZooID:        zooID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingZooIDHeader = errors.New("missing x-zoo-id header")

func requireZooID(ctx *app.RequestContext) (string, error) {
	zooID := strings.TrimSpace(string(ctx.GetHeader(zooIDHeader)))
	if zooID == "" {
		return "", ErrMissingZooIDHeader
	}
	return zooID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingZooIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_zoo_id", err.Error())
	case errors.Is(err, zoo.ErrInvalidAnimal):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_animal", "Animal's values were not all valid. Make sure all data is entered and try again.")
	case errors.Is(err, zoo.ErrNoSelection):
		writeErrorBody(ctx, consts.StatusBadRequest, "no_selection", "You must select an animal to feed meat to the remaining animals.")
	case errors.Is(err, zoo.ErrNotEnoughAnimals):
		writeErrorBody(ctx, consts.StatusConflict, "not_enough_animals", "You do not have any animals that can be fed to other animals.")
	case errors.Is(err, zoo.ErrAnimalNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "animal_not_found", err.Error())
	case errors.Is(err, zoo.ErrDuplicateAnimalID):
		writeErrorBody(ctx, consts.StatusConflict, "duplicate_animal", err.Error())
	case errors.Is(err, zoo.ErrUnsupportedCare),
		errors.Is(err, admit.ErrInvalidRequest),
		errors.Is(err, care.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
