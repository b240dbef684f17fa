package repository

import (
	"context"

	"github.com/parcel-desk/internal/models"

	"gorm.io/gorm"
)

const snapshotBatchSize = 200

// SnapshotRepository 快照数据访问接口
type SnapshotRepository interface {
	ReplaceAll(ctx context.Context, snapshots []models.DeliverySnapshot) error
	List(ctx context.Context) ([]models.DeliverySnapshot, error)
	Count(ctx context.Context) (int64, error)
}

// GormSnapshotRepository GORM 实现
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建快照仓库
func NewSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// ReplaceAll 在同一事务内清空快照表并写入新快照
func (r *GormSnapshotRepository) ReplaceAll(ctx context.Context, snapshots []models.DeliverySnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.DeliverySnapshot{}).Error; err != nil {
			return err
		}
		if len(snapshots) == 0 {
			return nil
		}
		return tx.CreateInBatches(&snapshots, snapshotBatchSize).Error
	})
}

// List 按表格中的位置顺序返回快照
func (r *GormSnapshotRepository) List(ctx context.Context) ([]models.DeliverySnapshot, error) {
	var snapshots []models.DeliverySnapshot
	if err := r.db.WithContext(ctx).Order("position asc").Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// Count 快照行数
func (r *GormSnapshotRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.DeliverySnapshot{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
