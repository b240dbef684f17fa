package service

import (
	"context"
	"time"

	"github.com/parcel-desk/internal/logger"
	"github.com/parcel-desk/internal/models"
	"github.com/parcel-desk/internal/repository"
)

// SnapshotService 将当前配送表导出到数据库
type SnapshotService struct {
	deliveryService *DeliveryService
	snapshotRepo    repository.SnapshotRepository
	now             func() time.Time
}

// NewSnapshotService 创建快照服务，snapshotRepo 为 nil 表示未启用
func NewSnapshotService(deliveryService *DeliveryService, snapshotRepo repository.SnapshotRepository) *SnapshotService {
	return &SnapshotService{
		deliveryService: deliveryService,
		snapshotRepo:    snapshotRepo,
		now:             time.Now,
	}
}

// Enabled 是否启用快照导出
func (s *SnapshotService) Enabled() bool {
	return s != nil && s.snapshotRepo != nil
}

// Export 用当前表格内容整体替换快照表，返回导出条数
func (s *SnapshotService) Export(ctx context.Context) (int, error) {
	if !s.Enabled() {
		return 0, ErrSnapshotDisabled
	}
	result, err := s.deliveryService.Load()
	if err != nil {
		return 0, err
	}
	exportedAt := s.now().UTC()
	snapshots := make([]models.DeliverySnapshot, 0, len(result.Deliveries))
	for i, delivery := range result.Deliveries {
		snapshots = append(snapshots, models.NewDeliverySnapshot(delivery, i, exportedAt))
	}
	if err := s.snapshotRepo.ReplaceAll(ctx, snapshots); err != nil {
		logger.Errorw("snapshot_export_failed", "error", err)
		return 0, err
	}
	logger.Infow("snapshot_exported", "rows", len(snapshots), "skipped", result.Skipped)
	return len(snapshots), nil
}
