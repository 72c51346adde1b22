package logic

import (
	"fmt"
	"time"

	"github.com/tourchain/tcs/internal/errs"
	"github.com/tourchain/tcs/internal/model"
	"github.com/tourchain/tcs/internal/store"
)

// CampaignLogic 项目查询与维护逻辑
type CampaignLogic struct {
	store *store.Store
}

// NewCampaignLogic 创建项目逻辑
func NewCampaignLogic(s *store.Store) *CampaignLogic {
	return &CampaignLogic{store: s}
}

// ListCampaigns 按插入顺序返回项目列表，limit<=0 时返回全部
func (l *CampaignLogic) ListCampaigns(limit int) []model.Campaign {
	return l.store.ListCampaigns(limit)
}

// GetCampaign 获取项目详情
func (l *CampaignLogic) GetCampaign(id int64) (model.Campaign, error) {
	c, ok := l.store.GetCampaign(id)
	if !ok {
		return model.Campaign{}, fmt.Errorf("%w: 项目 %d", errs.ErrNotFound, id)
	}
	return c, nil
}

// ListRewards 返回项目下的回报档位，项目不存在时返回 ErrNotFound
func (l *CampaignLogic) ListRewards(campaignID int64) ([]model.Reward, error) {
	if _, ok := l.store.GetCampaign(campaignID); !ok {
		return nil, fmt.Errorf("%w: 项目 %d", errs.ErrNotFound, campaignID)
	}
	return l.store.ListRewardsByCampaign(campaignID), nil
}

// ListContributions 返回项目下的贡献记录，项目不存在时返回 ErrNotFound
func (l *CampaignLogic) ListContributions(campaignID int64) ([]model.Contribution, error) {
	if _, ok := l.store.GetCampaign(campaignID); !ok {
		return nil, fmt.Errorf("%w: 项目 %d", errs.ErrNotFound, campaignID)
	}
	return l.store.ListContributionsByCampaign(campaignID), nil
}

// DeactivateExpired 将已过截止时间的项目置为结束，返回处理数量
// 不持有贡献流水线的项目锁：与 isActive 校验并发时最多放行一笔
// 恰在截止瞬间提交的支持，存储聚合仍保持一致
func (l *CampaignLogic) DeactivateExpired(now time.Time) int {
	inactive := false
	count := 0
	for _, c := range l.store.ListCampaigns(0) {
		if c.IsActive && now.After(c.Deadline) {
			if _, ok := l.store.UpdateCampaign(c.ID, store.CampaignUpdate{IsActive: &inactive}); ok {
				count++
			}
		}
	}
	return count
}
