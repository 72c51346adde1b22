package handler

import (
	"github.com/tourchain/tcs/internal/model"
)

// PledgeBody 支持请求体
// amount 为展示货币单位（元/美元），服务端换算为分；
// projectId 缺省指向演示项目 1
type PledgeBody struct {
	ProjectID       int64   `json:"projectId"`
	Amount          float64 `json:"amount"`
	RewardID        int64   `json:"rewardId"`
	UserID          int64   `json:"userId"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	WalletAddress   string  `json:"walletAddress"`
	Note            string  `json:"note"`
	IsAnonymous     bool    `json:"isAnonymous"`
	TransactionHash string  `json:"transactionHash"`
}

// RewardResponse 回报档位响应模型
// amount 为当前售价：固定档位即定价，动态档位按已售份数重算
type RewardResponse struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	TokenAmount int64  `json:"tokenAmount"`
	Claimed     int64  `json:"claimed"`
	Limit       int64  `json:"limit"`
	ContractID  string `json:"contractId,omitempty"`
	IsDynamic   bool   `json:"isDynamic"`
}

// ToRewardResponse 将回报档位模型转换为响应模型
func ToRewardResponse(r *model.Reward) RewardResponse {
	return RewardResponse{
		ID:          r.ID,
		ProjectID:   r.CampaignID,
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.CurrentPrice(),
		TokenAmount: r.TokenAmount,
		Claimed:     r.Claimed,
		Limit:       r.Limit,
		ContractID:  r.ContractID,
		IsDynamic:   r.IsDynamic(),
	}
}

// ToRewardResponseList 将回报档位模型列表转换为响应模型列表
func ToRewardResponseList(rewards []model.Reward) []RewardResponse {
	result := make([]RewardResponse, len(rewards))
	for i, r := range rewards {
		result[i] = ToRewardResponse(&r)
	}
	return result
}
