package router

import (
	"io/fs"
	"net/http"
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/middleware"
	"fintrack/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的静态文件 - 看板入口页
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// 写接口限流：每 IP 每分钟最多 60 次
	writeLimit := middleware.WriteRateLimit(60, time.Minute)

	// 交易记录
	transactionHandler := api.NewTransactionHandler()
	r.POST("/transactions", writeLimit, transactionHandler.Create)
	r.GET("/transactions", transactionHandler.List)
	r.PUT("/transactions/:id", writeLimit, transactionHandler.Update)
	r.DELETE("/transactions/:id", writeLimit, transactionHandler.Delete)

	// 类别预算
	budgetHandler := api.NewBudgetHandler()
	r.POST("/budgets", writeLimit, budgetHandler.Set)
	r.GET("/budgets", budgetHandler.List)

	// 消费类别（表单下拉用的固定列表）
	categoryHandler := api.NewCategoryHandler()
	r.GET("/categories", categoryHandler.List)

	// 统计
	statisticsHandler := api.NewStatisticsHandler()
	statistics := r.Group("/statistics")
	{
		statistics.GET("/summary", statisticsHandler.GetSummary)
		statistics.GET("/daily", statisticsHandler.GetDailyBreakdown)
	}

	// 导出
	exportHandler := api.NewExportHandler()
	export := r.Group("/export")
	{
		export.GET("/csv", exportHandler.ExportCSV)
		export.GET("/json", exportHandler.ExportJSON)
		export.GET("/excel", exportHandler.ExportExcel)
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
