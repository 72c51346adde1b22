package logic

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tourchain/tcs/internal/errs"
	"github.com/tourchain/tcs/internal/gateway"
	"github.com/tourchain/tcs/internal/model"
	"github.com/tourchain/tcs/internal/store"
)

// PaymentNotifier 到账通知协作方
type PaymentNotifier interface {
	PaymentReceived(c model.Contribution)
}

// PledgeRequest 支持请求
// 金额单位为分，HTTP 层负责从展示货币单位换算
type PledgeRequest struct {
	CampaignID      int64  `json:"projectId" validate:"required,gt=0"`
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	RewardID        int64  `json:"rewardId" validate:"omitempty,gt=0"`
	UserID          int64  `json:"userId" validate:"omitempty,gt=0"`
	Name            string `json:"name" validate:"omitempty,max=100"`
	Email           string `json:"email" validate:"omitempty,email"`
	WalletAddress   string `json:"walletAddress"`
	Note            string `json:"note" validate:"omitempty,max=500"`
	IsAnonymous     bool   `json:"isAnonymous"`
	TransactionHash string `json:"transactionHash"`
}

// PledgeLogic 贡献流水线
// 接收支持请求，完成校验、定价、落库与项目/档位计数更新
type PledgeLogic struct {
	store    *store.Store
	wallet   gateway.WalletGateway
	ledger   gateway.LedgerGateway
	notifier PaymentNotifier
	validate *validator.Validate
	locks    *campaignLocks
}

// NewPledgeLogic 创建贡献流水线
func NewPledgeLogic(s *store.Store, wallet gateway.WalletGateway, ledger gateway.LedgerGateway, notifier PaymentNotifier) *PledgeLogic {
	return &PledgeLogic{
		store:    s,
		wallet:   wallet,
		ledger:   ledger,
		notifier: notifier,
		validate: newValidator(),
		locks:    newCampaignLocks(),
	}
}

// SubmitPledge 提交一笔支持
//
// 校验顺序：字段形状 → 项目存在且进行中 → 档位存在且归属该项目 →
// 档位未领完 → 动态档位价格与服务端重算结果一致 → 支付渠道字段。
// 外部账本校验在临界区之外完成；随后在项目粒度的临界区内重新校验
// 并一次性写入贡献记录、项目 raised/backers、档位 claimed。
// 外部校验失败时不会留下任何存储变更。
func (l *PledgeLogic) SubmitPledge(ctx context.Context, req *PledgeRequest) (model.Contribution, error) {
	if err := l.validateShape(req); err != nil {
		return model.Contribution{}, err
	}

	// 钱包渠道且带交易哈希：先做只读预检，再到账本确认交易，
	// 等待外部回执期间不持有项目锁
	if req.WalletAddress != "" && req.TransactionHash != "" {
		if err := l.check(req); err != nil {
			return model.Contribution{}, err
		}
		if err := l.ledger.VerifyTransaction(ctx, req.TransactionHash); err != nil {
			return model.Contribution{}, err
		}
	}

	unlock := l.locks.lock(req.CampaignID)
	defer unlock()

	// 账本确认期间价格或余量可能已变化，锁内重新校验
	if err := l.check(req); err != nil {
		return model.Contribution{}, err
	}

	created, ok := l.store.CreateContribution(model.Contribution{
		CampaignID:      req.CampaignID,
		UserID:          req.UserID,
		RewardID:        req.RewardID,
		Amount:          req.Amount,
		Name:            req.Name,
		Email:           req.Email,
		WalletAddress:   req.WalletAddress,
		Note:            req.Note,
		IsAnonymous:     req.IsAnonymous,
		TransactionHash: req.TransactionHash,
	})
	if !ok {
		return model.Contribution{}, fmt.Errorf("%w: 项目 %d", errs.ErrNotFound, req.CampaignID)
	}

	// 传统渠道成功后异步派发到账通知，不阻塞请求
	if req.WalletAddress == "" && l.notifier != nil {
		l.notifier.PaymentReceived(created)
	}
	return created, nil
}

// check 只读业务校验，按规定顺序返回第一个业务错误
func (l *PledgeLogic) check(req *PledgeRequest) error {
	campaign, ok := l.store.GetCampaign(req.CampaignID)
	if !ok {
		return fmt.Errorf("%w: 项目 %d", errs.ErrNotFound, req.CampaignID)
	}
	if !campaign.IsActive {
		return errs.ErrCampaignClosed
	}

	if req.RewardID != 0 {
		reward, ok := l.store.GetReward(req.RewardID)
		if !ok {
			return fmt.Errorf("%w: 回报档位 %d", errs.ErrNotFound, req.RewardID)
		}
		if reward.CampaignID != req.CampaignID {
			return errs.ErrRewardMismatch
		}
		if reward.Exhausted() {
			return errs.ErrRewardExhausted
		}
		// 动态档位以服务端按已售份数重算的价格为准，
		// 客户端金额不一致说明读到了过期价格
		if reward.IsDynamic() && req.Amount != reward.CurrentPrice() {
			return errs.ErrPriceStale
		}
	}

	return l.checkRail(req)
}

// checkRail 支付渠道校验
// 钱包渠道要求合法的钱包地址；传统渠道要求姓名与邮箱（匿名除外）
func (l *PledgeLogic) checkRail(req *PledgeRequest) error {
	fields := make(map[string]string)
	if req.WalletAddress != "" {
		if !l.wallet.ValidateAddress(req.WalletAddress) {
			fields["walletAddress"] = "不是合法的钱包地址"
		}
	} else if !req.IsAnonymous {
		if req.Name == "" {
			fields["name"] = "不能为空"
		}
		if req.Email == "" {
			fields["email"] = "不能为空"
		}
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields)
	}
	return nil
}

// validateShape 字段形状校验，聚合所有失败字段
func (l *PledgeLogic) validateShape(req *PledgeRequest) error {
	err := l.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewValidationError(map[string]string{"payload": "请求体不合法"})
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = formatFieldError(fe)
	}
	return errs.NewValidationError(fields)
}

// newValidator 创建校验器，错误信息按json字段名输出
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatFieldError 生成单个字段的校验错误信息
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "gt":
		return "必须大于 " + fe.Param()
	case "email":
		return "不是合法的邮箱地址"
	case "max":
		return "长度不能超过 " + fe.Param()
	default:
		return "校验失败 (" + fe.Tag() + ")"
	}
}
