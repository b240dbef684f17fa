package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/parcel-desk/internal/models"
	"github.com/parcel-desk/internal/repository"
)

func TestSnapshotExportDisabled(t *testing.T) {
	svc, _ := setupDeliveryServiceTest(t)
	snapshots := NewSnapshotService(svc, nil)
	if snapshots.Enabled() {
		t.Fatalf("expected snapshot export disabled")
	}
	if _, err := snapshots.Export(context.Background()); !errors.Is(err, ErrSnapshotDisabled) {
		t.Fatalf("expected ErrSnapshotDisabled, got %v", err)
	}
}

func TestSnapshotExportReplacesRows(t *testing.T) {
	svc, _ := setupDeliveryServiceTest(t, "OD10001", "OD10002")
	mustCreate(t, svc, "Anan")
	mustCreate(t, svc, "Boon")

	db, err := models.OpenDB("sqlite", filepath.Join(t.TempDir(), "db", "snapshot.db"), false)
	if err != nil {
		t.Fatalf("open snapshot db failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate snapshot db failed: %v", err)
	}
	repo := repository.NewSnapshotRepository(db)
	snapshots := NewSnapshotService(svc, repo)

	ctx := context.Background()
	exported, err := snapshots.Export(ctx)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if exported != 2 {
		t.Fatalf("expected 2 exported rows, got %d", exported)
	}

	if _, err := svc.Delete("OD10001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if exported, err = snapshots.Export(ctx); err != nil || exported != 1 {
		t.Fatalf("expected 1 exported row, got %d err=%v", exported, err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list snapshots failed: %v", err)
	}
	if len(list) != 1 || list[0].OrderID != "OD10002" || list[0].Amount != "100" {
		t.Fatalf("unexpected snapshots: %+v", list)
	}
}
