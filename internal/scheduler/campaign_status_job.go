package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/tourchain/tcs/internal/config"
	"github.com/tourchain/tcs/internal/logger"
	"github.com/tourchain/tcs/internal/logic"
	"github.com/tourchain/tcs/internal/store"
)

// CampaignStatusJob 项目状态维护任务
// 周期性扫描进行中的项目，截止时间已过的置为结束，
// 使 isActive 成为服务端权威状态
type CampaignStatusJob struct {
	campaignLogic *logic.CampaignLogic
	config        *config.Config
}

// NewCampaignStatusJob 创建项目状态维护任务
func NewCampaignStatusJob(s *store.Store, cfg *config.Config) *CampaignStatusJob {
	return &CampaignStatusJob{
		campaignLogic: logic.NewCampaignLogic(s),
		config:        cfg,
	}
}

// GetName 获取任务名称
func (j *CampaignStatusJob) GetName() string {
	return "campaign_status_updater"
}

// GetSchedule 获取调度配置
func (j *CampaignStatusJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *CampaignStatusJob) Execute() {
	count := j.campaignLogic.DeactivateExpired(time.Now())
	if count > 0 {
		logger.Info("Campaign status update completed. Deactivated %d campaigns", count)
	}
}
