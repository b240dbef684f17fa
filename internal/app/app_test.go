package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/parcel-desk/internal/config"
)

type stubService struct {
	startErr error
	block    bool
	stopped  bool
}

func (s *stubService) Name() string { return "stub" }

func (s *stubService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return s.startErr
}

func (s *stubService) Stop(ctx context.Context) error {
	s.stopped = true
	return nil
}

func TestRunnerReturnsServiceError(t *testing.T) {
	boom := errors.New("boom")
	svc := &stubService{startErr: boom}
	err := NewRunner(svc).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected service error, got %v", err)
	}
	if !svc.stopped {
		t.Fatalf("expected service to be stopped")
	}
}

func TestRunnerCancelledContextIsNotError(t *testing.T) {
	svc := &stubService{block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewRunner(svc).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("expected nil on cancel, got %v", err)
	}
	if !svc.stopped {
		t.Fatalf("expected service to be stopped")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("expected error for empty runner")
	}
}

func TestRunConsoleUntilExit(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{File: filepath.Join(dir, "delivery_data.csv")},
		List:    config.ListConfig{PageSize: 10},
		Pricing: config.PricingConfig{UnitPrice: 50},
	}
	var out bytes.Buffer
	err := Run(Options{
		Config: cfg,
		In:     strings.NewReader("3\n7\n"),
		Out:    &out,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Total Deliveries: 0") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Exiting the Delivery Service. Goodbye!") {
		t.Fatalf("expected goodbye message:\n%s", out.String())
	}
}

func TestBuildRunnerReportsInitializeFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	cfg := &config.Config{Storage: config.StorageConfig{File: filepath.Join(blocker, "t.csv")}}
	if err := writeFile(blocker); err != nil {
		t.Fatalf("write blocker failed: %v", err)
	}
	var out bytes.Buffer
	err := Run(Options{Config: cfg, In: strings.NewReader("7\n"), Out: &out})
	if err != nil {
		t.Fatalf("initialize failure must not be fatal, got %v", err)
	}
	if !strings.HasPrefix(out.String(), "Error creating CSV file:") {
		t.Fatalf("expected creation error message, got:\n%s", out.String())
	}
}

func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0o644)
}
