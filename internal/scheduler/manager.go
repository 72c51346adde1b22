package scheduler

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/tourchain/tcs/internal/config"
	"github.com/tourchain/tcs/internal/logger"
	"github.com/tourchain/tcs/internal/store"
)

// Manager 定时任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	store     *store.Store
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(s *store.Store, cfg *config.Config) *Manager {
	sched, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: sched,
		store:     s,
		config:    cfg,
	}
}

// Start 启动任务管理器
func Start(s *store.Store, cfg *config.Config) {
	manager := NewManager(s, cfg)

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Scheduler started successfully")
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 注册项目状态维护任务
	m.RegisterCampaignStatusJob()
}

// RegisterCampaignStatusJob 注册项目状态维护任务
func (m *Manager) RegisterCampaignStatusJob() {
	job := NewCampaignStatusJob(m.store, m.config)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Scheduler stopped")
}
