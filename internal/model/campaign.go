package model

import "time"

// Campaign 众筹项目模型
// Raised/Backers 只能通过贡献记录单调递增，金额单位为分
type Campaign struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Goal        int64     `json:"goal"`   // 目标金额（分）
	Raised      int64     `json:"raised"` // 已筹金额（分）
	Backers     int64     `json:"backers"`
	Deadline    time.Time `json:"deadline"`
	TokenSymbol string    `json:"tokenSymbol"`

	// 区块链展示信息（仅作外部账本引用，不参与结算）
	ContractAddress string `json:"contractAddress,omitempty"`
	NetworkName     string `json:"networkName,omitempty"`

	ImageColor string `json:"imageColor,omitempty"`
	IsActive   bool   `json:"isActive"`
	CreatedBy  int64  `json:"createdBy"`
}
