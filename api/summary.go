package api

import (
	"fintrack/database"
	"fintrack/models"
	"fintrack/stats"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler 消费统计处理器
//
// 统计接口先全量取出交易，再用 stats 包在内存中聚合。月份名分组
// （不含年份）用 SQL 的 GROUP BY 表达起来各数据库不一致，放在 Go
// 里和图表口径完全一致。
type StatisticsHandler struct{}

// NewStatisticsHandler 创建消费统计处理器
func NewStatisticsHandler() *StatisticsHandler {
	return &StatisticsHandler{}
}

// SummaryResponse 看板汇总响应
type SummaryResponse struct {
	TotalExpenses  float64                  `json:"total_expenses"`
	ByCategory     map[string]float64       `json:"by_category"`
	ByMonth        map[string]float64       `json:"by_month"`
	BudgetVsActual []stats.BudgetComparison `json:"budget_vs_actual"`
	Recent         []models.Transaction     `json:"recent"`
}

// recentCount 看板展示的最近交易条数
const recentCount = 3

// GetSummary 获取看板汇总统计
// @Summary 获取看板汇总统计
// @Description 返回消费总额、按类别汇总、按月份汇总、预算与实际对比以及最近 3 条交易，对应看板上的各个图表。
// @Tags 统计
// @Produce json
// @Success 200 {object} Response{data=SummaryResponse} "获取成功"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /statistics/summary [get]
func (h *StatisticsHandler) GetSummary(c *gin.Context) {
	var transactions []models.Transaction
	if err := database.DB.Order("date DESC, id DESC").Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	var budgets []models.Budget
	if err := database.DB.Order("category ASC").Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, SummaryResponse{
		TotalExpenses:  stats.Total(transactions),
		ByCategory:     stats.ByCategory(transactions),
		ByMonth:        stats.ByMonth(transactions),
		BudgetVsActual: stats.BudgetVsActual(transactions, budgets),
		Recent:         stats.MostRecent(transactions, recentCount),
	})
}

// GetDailyBreakdown 获取指定月份的每日消费统计
// @Summary 获取每日消费统计
// @Description 按英文月份名（如 January）筛选交易，返回该月每天的消费合计，按天数升序。月份名不含年份，跨年的同名月份会合并统计。
// @Tags 统计
// @Produce json
// @Param month query string true "英文月份名，如 January"
// @Success 200 {object} Response{data=[]stats.DayTotal} "获取成功"
// @Failure 400 {object} Response "缺少 month 参数"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /statistics/daily [get]
func (h *StatisticsHandler) GetDailyBreakdown(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		BadRequest(c, "month参数必填，如: January")
		return
	}

	var transactions []models.Transaction
	if err := database.DB.Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, stats.ByDay(transactions, month))
}
