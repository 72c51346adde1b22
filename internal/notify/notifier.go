package notify

import (
	"github.com/panjf2000/ants/v2"
	"github.com/tourchain/tcs/internal/logger"
	"github.com/tourchain/tcs/internal/model"
)

// Notifier 支付到账通知器
// 传统支付渠道的到账通知通过协程池异步派发，
// 不阻塞贡献流水线的请求流程
type Notifier struct {
	pool *ants.Pool
}

// New 创建通知器
func New(workers int) (*Notifier, error) {
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Notifier{pool: pool}, nil
}

// PaymentReceived 派发到账通知任务
// 派发失败只记录日志，不影响已完成的贡献记录
func (n *Notifier) PaymentReceived(c model.Contribution) {
	err := n.pool.Submit(func() {
		recipient := c.Email
		if c.IsAnonymous || recipient == "" {
			logger.Info("Payment notification skipped for anonymous contribution %d", c.ID)
			return
		}
		// 演示环境没有外发邮件服务，通知内容仅落日志
		logger.Info("Payment notification sent to %s: contribution %d, project %d, amount %d",
			recipient, c.ID, c.CampaignID, c.Amount)
	})
	if err != nil {
		logger.Error("Failed to submit payment notification for contribution %d: %v", c.ID, err)
	}
}

// Close 释放协程池
func (n *Notifier) Close() {
	n.pool.Release()
}
