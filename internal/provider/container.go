package provider

import (
	"github.com/parcel-desk/internal/config"
	"github.com/parcel-desk/internal/logger"
	"github.com/parcel-desk/internal/models"
	"github.com/parcel-desk/internal/repository"
	"github.com/parcel-desk/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB // 仅在启用快照导出时非空

	// Repositories
	TableRepo    repository.TableRepository
	SnapshotRepo repository.SnapshotRepository

	// Services
	DeliveryService *service.DeliveryService
	SnapshotService *service.SnapshotService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	// 快照库连接失败只关闭导出功能，不影响配送表操作
	if cfg.Snapshot.Enabled {
		db, err := models.OpenDB(cfg.Snapshot.Driver, cfg.Snapshot.DSN, cfg.IsDebug())
		if err != nil {
			logger.Errorw("provider_open_snapshot_db_failed", "driver", cfg.Snapshot.Driver, "error", err)
		} else if err := models.AutoMigrate(db); err != nil {
			logger.Errorw("provider_migrate_snapshot_db_failed", "driver", cfg.Snapshot.Driver, "error", err)
		} else {
			c.DB = db
		}
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.TableRepo = repository.NewTableRepository(c.Config.Storage.File)
	if c.DB != nil {
		c.SnapshotRepo = repository.NewSnapshotRepository(c.DB)
	}
}

func (c *Container) initServices() {
	c.DeliveryService = service.NewDeliveryService(
		c.TableRepo,
		service.NewRandomIDGenerator(),
		c.Config.Pricing.UnitPrice,
		c.Config.List.PageSize,
	)
	c.SnapshotService = service.NewSnapshotService(c.DeliveryService, c.SnapshotRepo)
}

// Close 释放数据库连接
func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
