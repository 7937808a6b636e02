package main

import (
	"os"

	"patterns_homework/internal/config"
	"patterns_homework/internal/demo"
	"patterns_homework/internal/logger"
	"patterns_homework/internal/sysinfo"

	"github.com/sirupsen/logrus"
)

func main() {
	// 初始化配置
	if err := config.Init(); err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}

	// 初始化日志
	if err := logger.Init(); err != nil {
		logrus.Fatalf("Failed to initialize logger: %v", err)
	}

	cfg := config.GetConfig()
	logger.Infof("%s %s starting...", cfg.App.Name, cfg.App.Version)

	if host, err := sysinfo.Host(); err != nil {
		logger.Warnf("Failed to collect host info: %v", err)
	} else {
		logger.WithFields(host.Fields()).Debug("Host info")
	}

	if err := demo.Run(os.Stdout); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}

	logger.Infof("%s finished", cfg.App.Name)
}
