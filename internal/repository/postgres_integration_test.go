//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/parcel-desk/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}
	_ = db.Migrator().DropTable(&models.DeliverySnapshot{})
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate postgres snapshot failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(&models.DeliverySnapshot{})
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresSnapshotReplaceAll(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	delivery, err := models.DeliveryFromRow([]string{
		"2026-10-15", "OD10001", "Anan", "0812345678", "a.b@x.co", "1 Rama IV Rd", "Bangkok",
		"10500", "Fan", "not-a-number", "Cash", "TX10001", "TN100001", "Pending", "100",
	})
	if err != nil {
		t.Fatalf("decode row failed: %v", err)
	}
	if err := repo.ReplaceAll(ctx, []models.DeliverySnapshot{models.NewDeliverySnapshot(delivery, 0, now)}); err != nil {
		t.Fatalf("replace snapshots failed: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list snapshots failed: %v", err)
	}
	if len(list) != 1 || list[0].Quantity != "not-a-number" || list[0].Amount != "100" {
		t.Fatalf("unexpected snapshots: %+v", list)
	}
}
