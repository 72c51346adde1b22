package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tourchain/tcs/internal/errs"
	"github.com/tourchain/tcs/internal/logger"
)

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// WriteError 将业务错误映射为HTTP状态码
// 校验/价格过期/档位领完/档位归属错误 → 400；资源不存在 → 404；
// 项目已结束 → 409；外部服务失败 → 502；其余只落日志，对外返回通用信息
func WriteError(c *gin.Context, err error) {
	switch {
	case errs.IsValidation(err):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrPriceStale),
		errors.Is(err, errs.ErrRewardExhausted),
		errors.Is(err, errs.ErrRewardMismatch):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrCampaignClosed):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrGateway):
		ErrorResponse(c, http.StatusBadGateway, err.Error())
	default:
		logger.Error("Unexpected error: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "服务器内部错误")
	}
}
