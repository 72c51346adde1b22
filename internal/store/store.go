package store

import (
	"sync"
	"time"

	"github.com/tourchain/tcs/internal/model"
)

// Store 进程内聚合存储
// 所有实体实例由 Store 独占持有，读操作返回副本；
// 每个集合维护独立的自增标识符，从 1 开始，永不复用。
// 单次操作在内部锁保护下原子执行，跨操作的临界区由调用方
// （贡献流水线）按项目粒度加锁保证。
type Store struct {
	mu sync.RWMutex

	users         map[int64]model.User
	campaigns     map[int64]model.Campaign
	rewards       map[int64]model.Reward
	contributions map[int64]model.Contribution

	// 插入顺序，列表查询按此返回
	userOrder         []int64
	campaignOrder     []int64
	rewardOrder       []int64
	contributionOrder []int64

	userSeq         int64
	campaignSeq     int64
	rewardSeq       int64
	contributionSeq int64
}

// New 创建空存储
func New() *Store {
	return &Store{
		users:         make(map[int64]model.User),
		campaigns:     make(map[int64]model.Campaign),
		rewards:       make(map[int64]model.Reward),
		contributions: make(map[int64]model.Contribution),
	}
}

// ---- 用户 ----

// CreateUser 创建用户并分配标识符
func (s *Store) CreateUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	u.ID = s.userSeq
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return u
}

// GetUser 按ID获取用户
func (s *Store) GetUser(id int64) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// GetUserByUsername 按用户名获取用户
func (s *Store) GetUserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if u := s.users[id]; u.Username == username {
			return u, true
		}
	}
	return model.User{}, false
}

// GetUserByWalletAddress 按钱包地址获取用户
func (s *Store) GetUserByWalletAddress(addr string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if u := s.users[id]; u.WalletAddress == addr {
			return u, true
		}
	}
	return model.User{}, false
}

// ---- 项目 ----

// CreateCampaign 创建项目，筹款计数归零并置为进行中
func (s *Store) CreateCampaign(c model.Campaign) model.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaignSeq++
	c.ID = s.campaignSeq
	c.Raised = 0
	c.Backers = 0
	c.IsActive = true
	s.campaigns[c.ID] = c
	s.campaignOrder = append(s.campaignOrder, c.ID)
	return c
}

// GetCampaign 按ID获取项目
func (s *Store) GetCampaign(id int64) (model.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	return c, ok
}

// ListCampaigns 按插入顺序返回项目列表，limit<=0 时返回全部
func (s *Store) ListCampaigns(limit int) []model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.campaignOrder)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.Campaign, 0, n)
	for _, id := range s.campaignOrder[:n] {
		out = append(out, s.campaigns[id])
	}
	return out
}

// ListCampaignsByUser 返回指定用户创建的项目，O(n) 线性扫描
func (s *Store) ListCampaignsByUser(userID int64) []model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Campaign
	for _, id := range s.campaignOrder {
		if c := s.campaigns[id]; c.CreatedBy == userID {
			out = append(out, c)
		}
	}
	return out
}

// CampaignUpdate 项目部分更新字段，nil 表示不修改，标识符不可变更
type CampaignUpdate struct {
	Title       *string
	Description *string
	Raised      *int64
	Backers     *int64
	Deadline    *time.Time
	IsActive    *bool
}

// UpdateCampaign 合并更新项目字段
func (s *Store) UpdateCampaign(id int64, upd CampaignUpdate) (model.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return model.Campaign{}, false
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Raised != nil {
		c.Raised = *upd.Raised
	}
	if upd.Backers != nil {
		c.Backers = *upd.Backers
	}
	if upd.Deadline != nil {
		c.Deadline = *upd.Deadline
	}
	if upd.IsActive != nil {
		c.IsActive = *upd.IsActive
	}
	s.campaigns[id] = c
	return c, true
}

// ---- 回报档位 ----

// CreateReward 创建回报档位，Claimed 保留传入的初始值
func (s *Store) CreateReward(r model.Reward) model.Reward {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rewardSeq++
	r.ID = s.rewardSeq
	s.rewards[r.ID] = r
	s.rewardOrder = append(s.rewardOrder, r.ID)
	return r
}

// GetReward 按ID获取回报档位
func (s *Store) GetReward(id int64) (model.Reward, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rewards[id]
	return r, ok
}

// ListRewardsByCampaign 返回项目下的回报档位，O(n) 线性扫描
func (s *Store) ListRewardsByCampaign(campaignID int64) []model.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Reward{}
	for _, id := range s.rewardOrder {
		if r := s.rewards[id]; r.CampaignID == campaignID {
			out = append(out, r)
		}
	}
	return out
}

// RewardUpdate 回报档位部分更新字段，nil 表示不修改
type RewardUpdate struct {
	Title       *string
	Description *string
	Claimed     *int64
	Limit       *int64
	Scheme      model.PriceScheme
}

// UpdateReward 合并更新回报档位字段
func (s *Store) UpdateReward(id int64, upd RewardUpdate) (model.Reward, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rewards[id]
	if !ok {
		return model.Reward{}, false
	}
	if upd.Title != nil {
		r.Title = *upd.Title
	}
	if upd.Description != nil {
		r.Description = *upd.Description
	}
	if upd.Claimed != nil {
		r.Claimed = *upd.Claimed
	}
	if upd.Limit != nil {
		r.Limit = *upd.Limit
	}
	if upd.Scheme != nil {
		r.Scheme = upd.Scheme
	}
	s.rewards[id] = r
	return r, true
}

// ---- 贡献记录 ----

// CreateContribution 创建贡献记录并同步更新父项目与回报档位的计数
// 插入记录、项目 raised/backers 累加、档位 claimed 累加
// 在同一次锁持有期间完成，不会留下部分状态；
// 项目不存在时不做任何变更
func (s *Store) CreateContribution(c model.Contribution) (model.Contribution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaigns[c.CampaignID]
	if !ok {
		return model.Contribution{}, false
	}
	var reward model.Reward
	if c.RewardID != 0 {
		if reward, ok = s.rewards[c.RewardID]; !ok {
			return model.Contribution{}, false
		}
	}

	s.contributionSeq++
	c.ID = s.contributionSeq
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now()
	}
	s.contributions[c.ID] = c
	s.contributionOrder = append(s.contributionOrder, c.ID)

	campaign.Raised += c.Amount
	campaign.Backers++
	s.campaigns[campaign.ID] = campaign

	if c.RewardID != 0 {
		reward.Claimed++
		s.rewards[reward.ID] = reward
	}
	return c, true
}

// GetContribution 按ID获取贡献记录
func (s *Store) GetContribution(id int64) (model.Contribution, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contributions[id]
	return c, ok
}

// ListContributionsByCampaign 返回项目下的贡献记录，按插入顺序
func (s *Store) ListContributionsByCampaign(campaignID int64) []model.Contribution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Contribution{}
	for _, id := range s.contributionOrder {
		if c := s.contributions[id]; c.CampaignID == campaignID {
			out = append(out, c)
		}
	}
	return out
}

// ListContributionsByUser 返回用户的贡献记录，按插入顺序
func (s *Store) ListContributionsByUser(userID int64) []model.Contribution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Contribution{}
	for _, id := range s.contributionOrder {
		if c := s.contributions[id]; c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}
