package api

import (
	"strings"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 类别预算处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建类别预算处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// SetBudgetRequest 设置预算请求
type SetBudgetRequest struct {
	Category string  `json:"category" binding:"required" example:"Rent"`
	Amount   float64 `json:"amount" binding:"required,gt=0" example:"1000"`
}

// Set 设置类别预算（upsert）
// @Summary 设置类别预算
// @Description 按类别设置预算上限：该类别已有预算则替换金额，否则新建一条。每个类别至多一条预算由本接口保证。
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body SetBudgetRequest true "预算信息"
// @Success 201 {object} Response{data=models.Budget} "保存成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /budgets [post]
func (h *BudgetHandler) Set(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		BadRequest(c, "类别不能为空")
		return
	}

	// 以 category 为键 upsert：存在则替换金额，不存在则新建
	var budget models.Budget
	if err := database.DB.Where("category = ?", req.Category).First(&budget).Error; err == nil {
		if err := database.DB.Model(&budget).Update("amount", req.Amount).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "保存预算失败"))
			return
		}
		budget.Amount = req.Amount
		Created(c, "预算已更新", budget)
		return
	}

	budget = models.Budget{Category: req.Category, Amount: req.Amount}
	if err := database.DB.Create(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "保存预算失败"))
		return
	}

	Created(c, "预算已创建", budget)
}

// List 获取所有类别预算
// @Summary 获取预算列表
// @Description 返回所有类别预算，按类别名排序
// @Tags 预算
// @Produce json
// @Success 200 {array} models.Budget "获取成功"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	budgets := make([]models.Budget, 0)
	if err := database.DB.Order("category ASC").Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	c.JSON(200, budgets)
}
