package model

import "time"

// Contribution 贡献记录
// 每笔被接受的支持创建且仅创建一条，创建后不可变、不可删除
// UserID/RewardID 为 0 表示无关联（标识符从 1 开始分配）
type Contribution struct {
	ID              int64     `json:"id"`
	CampaignID      int64     `json:"projectId"`
	UserID          int64     `json:"userId,omitempty"`
	RewardID        int64     `json:"rewardId,omitempty"`
	Amount          int64     `json:"amount"` // 金额（分），必须大于 0
	Name            string    `json:"name,omitempty"`
	Email           string    `json:"email,omitempty"`
	WalletAddress   string    `json:"walletAddress,omitempty"`
	Note            string    `json:"note,omitempty"`
	IsAnonymous     bool      `json:"isAnonymous"`
	TransactionHash string    `json:"transactionHash,omitempty"` // 外部账本关联ID
	Timestamp       time.Time `json:"timestamp"`                 // 服务端分配的创建时间
}
