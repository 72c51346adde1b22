package config

import (
	"github.com/spf13/viper"
	"github.com/tourchain/tcs/internal/logger"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LedgerConfig 外部账本配置
type LedgerConfig struct {
	Enabled       bool   `mapstructure:"enabled"`       // 是否校验链上交易
	RpcUrl        string `mapstructure:"rpc_url"`       // RPC节点URL
	Confirmations uint64 `mapstructure:"confirmations"` // 确认数
}

// NotifyConfig 到账通知配置
type NotifyConfig struct {
	Workers int `mapstructure:"workers"` // 协程池大小
}

type SchedulerConfig struct {
	Interval int `mapstructure:"interval"` // 秒
}

// SeedConfig 演示数据配置
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/tcs")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("ledger.enabled", false)
	viper.SetDefault("ledger.rpc_url", "")
	viper.SetDefault("ledger.confirmations", 12)
	viper.SetDefault("notify.workers", 4)
	viper.SetDefault("scheduler.interval", 60)
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
