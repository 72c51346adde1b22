package main

import (
	"github.com/gin-gonic/gin"
	"github.com/tourchain/tcs/internal/config"
	"github.com/tourchain/tcs/internal/gateway"
	"github.com/tourchain/tcs/internal/logger"
	"github.com/tourchain/tcs/internal/logic"
	"github.com/tourchain/tcs/internal/notify"
	"github.com/tourchain/tcs/internal/router"
	"github.com/tourchain/tcs/internal/scheduler"
	"github.com/tourchain/tcs/internal/store"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	initLogger(cfg.Log)
	defer logger.Sync()

	// 初始化存储
	s := store.New()
	if cfg.Seed.Enabled {
		store.Seed(s)
		logger.Info("Demo data seeded")
	}

	// 初始化外部账本网关
	var ledger gateway.LedgerGateway = gateway.NoopLedger{}
	if cfg.Ledger.Enabled {
		ethLedger, err := gateway.NewEthLedger(cfg.Ledger.RpcUrl, cfg.Ledger.Confirmations)
		if err != nil {
			logger.Fatal("Failed to initialize ledger gateway: %v", err)
		}
		ledger = ethLedger
	}

	// 初始化到账通知器
	notifier, err := notify.New(cfg.Notify.Workers)
	if err != nil {
		logger.Fatal("Failed to initialize notifier: %v", err)
	}
	defer notifier.Close()

	// 初始化贡献流水线
	pledgeLogic := logic.NewPledgeLogic(s, gateway.EthWallet{}, ledger, notifier)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(s, pledgeLogic)

	// 启动定时任务
	scheduler.Start(s, cfg)

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}

// initLogger 按配置初始化默认日志器
func initLogger(cfg config.LogConfig) {
	level := logger.ParseLogLevel(cfg.Level)

	if cfg.Output == "file" {
		l, err := logger.NewWithFileRotation(level, cfg.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(l)
		return
	}

	l, err := logger.New(level)
	if err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	logger.SetDefaultLogger(l)
}
