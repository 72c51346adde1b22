package logic

import "sync"

// campaignLocks 以项目为粒度的互斥锁集合
// 贡献流水线的 读取-校验-写入 序列必须在对应项目的锁内执行，
// 防止两笔并发支持读到同一个过期价格后同时成交
type campaignLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newCampaignLocks() *campaignLocks {
	return &campaignLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock 锁定指定项目，返回解锁函数
func (c *campaignLocks) lock(campaignID int64) func() {
	c.mu.Lock()
	m, ok := c.locks[campaignID]
	if !ok {
		m = &sync.Mutex{}
		c.locks[campaignID] = m
	}
	c.mu.Unlock()

	m.Lock()
	return m.Unlock
}
