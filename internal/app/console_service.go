package app

import (
	"context"
	"errors"

	"github.com/parcel-desk/internal/console"
)

// ConsoleService 交互菜单服务封装
type ConsoleService struct {
	name    string
	console *console.Console
}

// NewConsoleService 创建菜单服务
func NewConsoleService(c *console.Console) *ConsoleService {
	return &ConsoleService{
		name:    "console",
		console: c,
	}
}

// Name 服务名称
func (s *ConsoleService) Name() string {
	if s == nil || s.name == "" {
		return "console"
	}
	return s.name
}

// Start 运行菜单循环，用户退出时返回
func (s *ConsoleService) Start(ctx context.Context) error {
	if s == nil || s.console == nil {
		return errors.New("console not initialized")
	}
	return s.console.Run(ctx)
}

// Stop 菜单阻塞在读取输入上，无需额外清理
func (s *ConsoleService) Stop(ctx context.Context) error {
	return nil
}
