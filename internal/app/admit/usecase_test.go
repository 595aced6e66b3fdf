package admit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"zoosim/internal/adapter/repo/memory"
	"zoosim/internal/app/ports"
	"zoosim/internal/domain/zoo"
)

func newAdmitUseCase(t *testing.T) (UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	z := zoo.New("zoo-1")
	z.Version = 1
	store.SeedZoo(z)
	next := 0
	return UseCase{
		TxManager: memory.NewTxManager(store),
		ZooRepo:   memory.NewZooRepo(store),
		EventRepo: memory.NewEventRepo(store),
		NewID: func() string {
			next++
			return fmt.Sprintf("a-%d", next)
		},
		Now: func() time.Time { return time.Unix(1700000000, 0) },
	}, store
}

func TestUseCase_AdmitsValidAnimal(t *testing.T) {
	uc, store := newAdmitUseCase(t)
	var buf bytes.Buffer
	uc.Logger = log.New(&buf, "", 0)

	resp, err := uc.Execute(context.Background(), Request{ZooID: "zoo-1", Name: "Rex", Species: "Lion", Weight: 40})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Animal.ID != "a-1" || resp.Animal.HungerLevel != zoo.InitialHungerLevel {
		t.Fatalf("unexpected animal: %+v", resp.Animal)
	}
	if resp.Header != "Animals: 1" {
		t.Fatalf("unexpected header: %s", resp.Header)
	}

	stored, err := memory.NewZooRepo(store).GetByZooID(context.Background(), "zoo-1")
	if err != nil {
		t.Fatalf("load zoo: %v", err)
	}
	if stored.Count() != 1 || stored.Version != 2 {
		t.Fatalf("expected one animal at version 2, got count=%d version=%d", stored.Count(), stored.Version)
	}
	events, err := memory.NewEventRepo(store).ListByZooID(context.Background(), "zoo-1", 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if events[0].Type != zoo.EventAnimalAdmitted || events[0].Payload["zoo_id"] != "zoo-1" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if !strings.Contains(buf.String(), "Rex the Lion") {
		t.Fatalf("expected admission log line, got %q", buf.String())
	}
}

func TestUseCase_RejectsInvalidAnimal(t *testing.T) {
	uc, store := newAdmitUseCase(t)
	for _, req := range []Request{
		{ZooID: "zoo-1", Name: "", Species: "Lion", Weight: 40},
		{ZooID: "zoo-1", Name: "Rex", Species: "", Weight: 40},
		{ZooID: "zoo-1", Name: "Rex", Species: "Lion", Weight: 0.5},
		{ZooID: "zoo-1", Name: "Rex", Species: "Lion", Weight: 101},
	} {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, zoo.ErrInvalidAnimal) {
			t.Fatalf("expected ErrInvalidAnimal for %+v, got %v", req, err)
		}
	}
	stored, _ := memory.NewZooRepo(store).GetByZooID(context.Background(), "zoo-1")
	if stored.Count() != 0 || stored.Version != 1 {
		t.Fatalf("zoo changed after rejected admissions: count=%d version=%d", stored.Count(), stored.Version)
	}
}

func TestUseCase_RequiresZoo(t *testing.T) {
	uc, _ := newAdmitUseCase(t)
	if _, err := uc.Execute(context.Background(), Request{Name: "Rex", Species: "Lion", Weight: 40}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), Request{ZooID: "zoo-9", Name: "Rex", Species: "Lion", Weight: 40}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
