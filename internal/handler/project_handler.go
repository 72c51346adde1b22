package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tourchain/tcs/internal/logic"
	"github.com/tourchain/tcs/internal/store"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	campaignLogic *logic.CampaignLogic
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(s *store.Store) *ProjectHandler {
	return &ProjectHandler{
		campaignLogic: logic.NewCampaignLogic(s),
	}
}

// GetProjects 获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, h.campaignLogic.ListCampaigns(limit))
}

// GetProject 获取单个项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	campaign, err := h.campaignLogic.GetCampaign(id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// GetProjectRewards 获取项目回报档位
func (h *ProjectHandler) GetProjectRewards(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	rewards, err := h.campaignLogic.ListRewards(id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToRewardResponseList(rewards))
}

// GetProjectContributions 获取项目贡献记录
func (h *ProjectHandler) GetProjectContributions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	contributions, err := h.campaignLogic.ListContributions(id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributions)
}
