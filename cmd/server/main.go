package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "zoosim/internal/adapter/http"
	metricsinmem "zoosim/internal/adapter/metrics/inmemory"
	"zoosim/internal/adapter/random"
	"zoosim/internal/adapter/repo/memory"
	"zoosim/internal/app/admit"
	"zoosim/internal/app/care"
	"zoosim/internal/app/replay"
	"zoosim/internal/app/session"
	"zoosim/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/google/uuid"
)

const demoZooID = "demo-zoo"

type config struct {
	Addr       string
	RandomSeed int64
	SeedDemo   bool
}

func main() {
	logger := log.New(os.Stderr, "zoosim ", log.LstdFlags)
	cfg := loadConfig()

	store := memory.NewStore()
	txManager := memory.NewTxManager(store)
	zooRepo := memory.NewZooRepo(store)
	eventRepo := memory.NewEventRepo(store)
	kpiRecorder := metricsinmem.NewRecorder()

	admitUC := admit.UseCase{
		TxManager: txManager,
		ZooRepo:   zooRepo,
		EventRepo: eventRepo,
		NewID:     uuid.NewString,
		Now:       time.Now,
		Logger:    logger,
	}
	sessionUC := session.UseCase{
		TxManager: txManager,
		ZooRepo:   zooRepo,
		EventRepo: eventRepo,
		NewID:     uuid.NewString,
		Now:       time.Now,
	}

	if cfg.SeedDemo {
		if err := seedDemoZoo(context.Background(), sessionUC, admitUC); err != nil {
			logger.Fatalf("seed demo zoo: %v", err)
		}
	}

	h := httpadapter.Handler{
		SessionUC: sessionUC,
		AdmitUC:   admitUC,
		CareUC: care.UseCase{
			TxManager:  txManager,
			ZooRepo:    zooRepo,
			ActionRepo: memory.NewCareExecutionRepo(store),
			EventRepo:  eventRepo,
			Metrics:    kpiRecorder,
			Rand:       random.NewSource(cfg.RandomSeed),
			Now:        time.Now,
			Logger:     logger,
		},
		StatusUC: status.UseCase{ZooRepo: zooRepo},
		ReplayUC: replay.UseCase{Events: eventRepo},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	if cfg.SeedDemo {
		logger.Printf("listening on %s (demo zoo: %s, seed %d)", cfg.Addr, demoZooID, cfg.RandomSeed)
	} else {
		logger.Printf("listening on %s (seed %d)", cfg.Addr, cfg.RandomSeed)
	}
	s.Spin()
}

func loadConfig() config {
	return config{
		Addr:       stringEnv("ZOO_HTTP_ADDR", ":8080"),
		RandomSeed: int64Env("ZOO_RANDOM_SEED", time.Now().UnixNano()),
		SeedDemo:   strings.TrimSpace(os.Getenv("ZOO_DEMO_SEED")) == "1",
	}
}

// seedDemoZoo opens a zoo under a fixed id and fills it with a few animals so
// the API can be tried without any setup calls.
func seedDemoZoo(ctx context.Context, sessionUC session.UseCase, admitUC admit.UseCase) error {
	sessionUC.NewID = func() string { return demoZooID }
	if _, err := sessionUC.Execute(ctx); err != nil {
		return err
	}
	for _, a := range []admit.Request{
		{Name: "Leo", Species: "Lion", Weight: 80},
		{Name: "Zara", Species: "Zebra", Weight: 45},
		{Name: "Pip", Species: "Penguin", Weight: 12},
	} {
		a.ZooID = demoZooID
		if _, err := admitUC.Execute(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func int64Env(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
