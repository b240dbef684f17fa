package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/parcel-desk/internal/app"
	"github.com/parcel-desk/internal/config"
	"github.com/parcel-desk/internal/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// desk 命令行运行时状态，Before 中加载
type desk struct {
	cfg *config.Config
}

func newCLI() *cli.App {
	d := &desk{}
	return &cli.App{
		Name:  "desk",
		Usage: "delivery order record store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path (default: ./config.yml, ./etc/config.yml, ../config.yml)",
				EnvVars: []string{"DESK_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "delivery table path, overrides storage.file",
			},
		},
		Before:   d.load,
		After:    d.flush,
		Action:   d.interactive,
		Commands: d.commands(),
	}
}

// flush 退出前刷新日志缓冲
func (d *desk) flush(*cli.Context) error {
	logger.Sync()
	return nil
}

// load 加载配置并初始化日志
func (d *desk) load(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("load config failed: %v", err), 1)
	}
	if file := strings.TrimSpace(c.String("file")); file != "" {
		cfg.Storage.File = file
	}
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	d.cfg = cfg
	return nil
}

// interactive 默认进入交互菜单
func (d *desk) interactive(c *cli.Context) error {
	err := app.Run(app.Options{
		Config:  d.cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		In:      os.Stdin,
		Out:     c.App.Writer,
	})
	if err != nil {
		logger.Errorw("app_run_failed", "error", err)
		return cli.Exit(fmt.Sprintf("An error occurred: %v", err), 1)
	}
	return nil
}
