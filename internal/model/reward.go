package model

// PriceScheme 回报档位定价方案
// 封闭的标签联合：固定价 FixedPrice 或动态价 DynamicPrice，
// 定价规则通过类型开关穷举处理
type PriceScheme interface {
	isPriceScheme()
}

// FixedPrice 固定价：项目存续期内价格不变
type FixedPrice struct {
	Amount int64 // 单价（分）
}

// DynamicPrice 动态价：每成功售出一份，价格上涨 Step
type DynamicPrice struct {
	BasePrice int64 // 起始价（分）
	Step      int64 // 每份涨价幅度（分）
}

func (FixedPrice) isPriceScheme()   {}
func (DynamicPrice) isPriceScheme() {}

// DynamicBundleSize 动态档位每次购买固定发放的代币数量
const DynamicBundleSize = 100

// Reward 回报档位模型，归属于唯一一个项目
type Reward struct {
	ID          int64
	CampaignID  int64
	Title       string
	Description string
	Scheme      PriceScheme
	TokenAmount int64 // 每份发放的代币数量
	Claimed     int64 // 已领取份数，单调递增
	Limit       int64 // 最大可领取份数
	ContractID  string
}

// CurrentPrice 计算当前售价
// 动态档位的价格必须在每次下单时根据已售份数重新计算，
// 不允许以客户端缓存的价格为准
func (r *Reward) CurrentPrice() int64 {
	switch s := r.Scheme.(type) {
	case FixedPrice:
		return s.Amount
	case DynamicPrice:
		return s.BasePrice + s.Step*r.Claimed
	default:
		return 0
	}
}

// IsDynamic 是否为动态定价档位
func (r *Reward) IsDynamic() bool {
	_, ok := r.Scheme.(DynamicPrice)
	return ok
}

// Exhausted 档位是否已领完
func (r *Reward) Exhausted() bool {
	return r.Limit > 0 && r.Claimed >= r.Limit
}
