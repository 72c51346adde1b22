package gateway

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/tourchain/tcs/internal/errs"
)

// EthWallet 以太坊钱包网关，仅做地址格式校验
type EthWallet struct{}

// ValidateAddress 校验是否为合法的以太坊地址
func (EthWallet) ValidateAddress(addr string) bool {
	return common.IsHexAddress(addr)
}

// EthLedger 以太坊账本网关
type EthLedger struct {
	client        *ethclient.Client
	confirmations uint64
}

// NewEthLedger 连接以太坊节点并创建账本网关
func NewEthLedger(rpcURL string, confirmations uint64) (*EthLedger, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}

	return &EthLedger{
		client:        client,
		confirmations: confirmations,
	}, nil
}

// VerifyTransaction 校验交易已上链且达到确认数
// 任何节点通信失败均归类为可重试的外部服务错误
func (l *EthLedger) VerifyTransaction(ctx context.Context, txHash string) error {
	receipt, err := l.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return fmt.Errorf("%w: 查询交易回执失败: %v", errs.ErrGateway, err)
	}
	if receipt == nil {
		return fmt.Errorf("%w: 交易不存在", errs.ErrGateway)
	}

	header, err := l.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: 查询最新区块失败: %v", errs.ErrGateway, err)
	}

	if header.Number.Uint64() < receipt.BlockNumber.Uint64()+l.confirmations {
		return fmt.Errorf("%w: 交易尚未确认", errs.ErrGateway)
	}
	return nil
}
