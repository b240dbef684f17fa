package app

import (
	"errors"
	"io"

	"github.com/parcel-desk/internal/console"
	"github.com/parcel-desk/internal/provider"
)

// BuildRunner 构建菜单运行器
func BuildRunner(container *provider.Container, in io.Reader, out io.Writer) (*Runner, error) {
	if container == nil || container.DeliveryService == nil {
		return nil, errors.New("container is not initialized")
	}
	// 建表失败只提示，后续读取视为空表
	if err := container.DeliveryService.Initialize(); err != nil {
		if _, werr := io.WriteString(out, "Error creating CSV file:"+err.Error()+"\n"); werr != nil {
			return nil, werr
		}
	}
	menu := console.New(container.DeliveryService, in, out)
	return NewRunner(NewConsoleService(menu)), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	container := provider.NewContainer(opts.Config)
	defer func() {
		if err := container.Close(); err != nil {
			opts.Logger.Warnw("app_close_container_failed", "error", err)
		}
	}()

	runner, err := BuildRunner(container, opts.In, opts.Out)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start",
		"table", opts.Config.Storage.File,
		"snapshot_enabled", container.SnapshotService.Enabled(),
	)
	return RunWithOptions(runner, opts)
}
