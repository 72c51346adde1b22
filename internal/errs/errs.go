package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// 业务错误哨兵，HTTP 层据此映射状态码
var (
	ErrNotFound        = errors.New("资源不存在")
	ErrCampaignClosed  = errors.New("项目已结束，无法接受支持")
	ErrRewardMismatch  = errors.New("回报档位不属于该项目")
	ErrRewardExhausted = errors.New("回报档位已被领完")
	ErrPriceStale      = errors.New("价格已更新，请刷新最新价格后重试")
	ErrGateway         = errors.New("外部服务调用失败，请稍后重试")
)

// ValidationError 参数校验错误
// 按字段聚合所有校验失败信息，一次性返回给调用方
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError 创建参数校验错误
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return "参数校验失败: " + strings.Join(parts, "; ")
}

// IsValidation 判断是否为参数校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
