package gateway

import "context"

// WalletGateway 钱包协作方
// 钱包连接、签名流程由外部完成，本服务只校验并记录地址
type WalletGateway interface {
	ValidateAddress(addr string) bool
}

// LedgerGateway 外部账本协作方
// 校验一笔链上交易是否存在且已确认；调用方不得在临界区内等待
type LedgerGateway interface {
	VerifyTransaction(ctx context.Context, txHash string) error
}

// NoopLedger 空账本网关，未配置 RPC 节点时使用，接受所有交易
type NoopLedger struct{}

func (NoopLedger) VerifyTransaction(ctx context.Context, txHash string) error {
	return nil
}
