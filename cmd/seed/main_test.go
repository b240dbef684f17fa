package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/parcel-desk/internal/repository"
	"github.com/parcel-desk/internal/service"
)

func TestSeedDeliveries(t *testing.T) {
	repo := repository.NewTableRepository(filepath.Join(t.TempDir(), "delivery_data.csv"))
	svc := service.NewDeliveryService(repo, nil, 50, 10)
	if err := svc.Initialize(); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	created, err := seedDeliveries(svc, 12, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if created != 12 {
		t.Fatalf("expected 12 created, got %d", created)
	}
	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 12 {
		t.Fatalf("expected 12 stored deliveries, got %d", count)
	}
}
