package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tourchain/tcs/internal/handler"
	"github.com/tourchain/tcs/internal/logic"
	"github.com/tourchain/tcs/internal/store"
)

func Setup(s *store.Store, pledgeLogic *logic.PledgeLogic) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "tourchain-crowdfunding-service",
		})
	})

	api := r.Group("/api")
	{
		// 项目相关路由
		projectHandler := handler.NewProjectHandler(s)
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/rewards", projectHandler.GetProjectRewards)
			projects.GET("/:id/contributions", projectHandler.GetProjectContributions)
		}

		// 支持提交
		pledgeHandler := handler.NewPledgeHandler(pledgeLogic)
		api.POST("/pledge", pledgeHandler.CreatePledge)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
