package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gowvp/camclip/internal/app"
	"github.com/gowvp/camclip/internal/conf"
	"github.com/ixugo/goddd/pkg/system"
)

// buildVersion 由编译参数注入
var buildVersion = "dev"

func main() {
	var confPath string
	flag.StringVar(&confPath, "conf", filepath.Join(system.Getwd(), "configs", "config.toml"), "配置文件路径")
	flag.Parse()

	bc, err := conf.SetupConfig(confPath)
	if err != nil {
		slog.Error("读取配置失败", "err", err, "path", confPath)
		os.Exit(1)
	}
	bc.BuildVersion = buildVersion

	setupLog(bc.Debug)

	stop, err := app.Run(bc)
	if err != nil {
		slog.Error("启动失败", "err", err)
		os.Exit(1)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	stop()
	slog.Info("bye")
}

func setupLog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})))
}
