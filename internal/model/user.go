package model

// User 用户模型
// 注册（或演示数据初始化）时创建一次，本服务范围内创建后不可变
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"` // 唯一
	Password      string `json:"-"`
	Email         string `json:"email,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
}
