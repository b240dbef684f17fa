package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parcel-desk/internal/constants"
	"github.com/parcel-desk/internal/logger"

	"github.com/spf13/viper"
)

// DefaultTableFilename 默认配送表文件名（与可执行文件同目录）
const DefaultTableFilename = "delivery_data.csv"

// Config 应用配置结构
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
	Storage  StorageConfig  `mapstructure:"storage"`
	List     ListConfig     `mapstructure:"list"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

// AppConfig 应用配置
type AppConfig struct {
	Mode string `mapstructure:"mode"` // debug / release
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// StorageConfig 配送表存储配置
type StorageConfig struct {
	File string `mapstructure:"file"` // 为空时使用可执行文件目录下的 delivery_data.csv
}

// ListConfig 列表展示配置
type ListConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// PricingConfig 计价配置
type PricingConfig struct {
	UnitPrice int64 `mapstructure:"unit_price"` // 每件单价
}

// SnapshotConfig 快照导出配置
type SnapshotConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"` // 数据库驱动（sqlite/postgres）
	DSN     string `mapstructure:"dsn"`    // 数据库连接串
}

// IsDebug 是否为调试模式
func (c *Config) IsDebug() bool {
	return strings.EqualFold(strings.TrimSpace(c.App.Mode), logger.ModeDebug)
}

// Load 从 config.yml 加载配置，configFile 非空时只读取该文件
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")     // 从当前目录查找
		v.AddConfigPath("./etc") // etc 文件夹
		v.AddConfigPath("../")   // 如果从 cmd/desk 运行
	}

	v.SetDefault("app.mode", logger.ModeRelease)
	v.SetDefault("log.dir", "")
	v.SetDefault("log.filename", "desk.log")
	v.SetDefault("log.max_size_mb", 20)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("storage.file", "")
	v.SetDefault("list.page_size", constants.DefaultPageSize)
	v.SetDefault("pricing.unit_price", constants.DefaultUnitPrice)
	v.SetDefault("snapshot.enabled", false)
	v.SetDefault("snapshot.driver", constants.SnapshotDriverSQLite)
	v.SetDefault("snapshot.dsn", "./db/deliveries.db")

	// 环境变量支持（例如 storage.file -> DESK_STORAGE_FILE）
	v.SetEnvPrefix("desk")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		logger.Debugw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Debugw("config_file_loaded", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		return nil, fmt.Errorf("配置解析失败: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// normalize 补齐非法或缺省的配置项
func (c *Config) normalize() {
	if c.List.PageSize <= 0 {
		c.List.PageSize = constants.DefaultPageSize
	}
	if c.Pricing.UnitPrice <= 0 {
		c.Pricing.UnitPrice = constants.DefaultUnitPrice
	}
	c.Storage.File = resolveTablePath(c.Storage.File)
}

func resolveTablePath(path string) string {
	path = strings.TrimSpace(path)
	if path != "" {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return DefaultTableFilename
	}
	return filepath.Join(filepath.Dir(exe), DefaultTableFilename)
}
