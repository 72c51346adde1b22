package handler

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tourchain/tcs/internal/logic"
)

// 展示货币单位的金额上限，换算为分后仍在 int64 表示范围内
const maxPledgeAmount = 1 << 52

// PledgeHandler 支持请求处理器
type PledgeHandler struct {
	pledgeLogic *logic.PledgeLogic
}

// NewPledgeHandler 创建支持请求处理器
func NewPledgeHandler(pledgeLogic *logic.PledgeLogic) *PledgeHandler {
	return &PledgeHandler{
		pledgeLogic: pledgeLogic,
	}
}

// CreatePledge 提交支持
func (h *PledgeHandler) CreatePledge(c *gin.Context) {
	var body PledgeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体不是合法的JSON")
		return
	}

	// 演示页面未传项目ID时默认指向项目1
	if body.ProjectID == 0 {
		body.ProjectID = 1
	}

	// 超出 int64 范围的浮点转换结果依平台而定，换算前先限定范围
	if body.Amount > maxPledgeAmount || body.Amount < -maxPledgeAmount {
		ErrorResponse(c, http.StatusBadRequest, "参数校验失败: amount 超出允许范围")
		return
	}

	req := &logic.PledgeRequest{
		CampaignID: body.ProjectID,
		// 展示货币单位换算为分
		Amount:          int64(math.Round(body.Amount * 100)),
		RewardID:        body.RewardID,
		UserID:          body.UserID,
		Name:            body.Name,
		Email:           body.Email,
		WalletAddress:   body.WalletAddress,
		Note:            body.Note,
		IsAnonymous:     body.IsAnonymous,
		TransactionHash: body.TransactionHash,
	}

	contribution, err := h.pledgeLogic.SubmitPledge(c.Request.Context(), req)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contribution)
}
