package api

import (
	"strconv"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建交易记录请求
type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required" example:"Weekly groceries"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"99.99"`
	Category    string  `json:"category" binding:"required" example:"Groceries"`
	Date        string  `json:"date" binding:"required" example:"2024-01-15 12:30:00"`
}

// UpdateTransactionRequest 更新交易记录请求
type UpdateTransactionRequest struct {
	Description string  `json:"description" example:"Weekly groceries"`
	Amount      float64 `json:"amount" binding:"omitempty,gt=0" example:"99.99"`
	Category    string  `json:"category" example:"Groceries"`
	Date        string  `json:"date" example:"2024-01-15 12:30:00"`
}

// ListTransactionsRequest 交易记录列表请求
type ListTransactionsRequest struct {
	Page  int `form:"page" example:"1"`
	Limit int `form:"limit" example:"10"`
}

// TransactionListResponse 交易记录列表响应
type TransactionListResponse struct {
	Transactions      []models.Transaction `json:"transactions"`
	HasMore           bool                 `json:"hasMore"`
	TotalTransactions int64                `json:"totalTransactions"`
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 创建一条新的交易记录。类别不做白名单校验，未知类别在前端回退到默认图标展示。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "交易记录信息"
// @Success 201 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 解析时间
	date, err := time.ParseInLocation("2006-01-02 15:04:05", req.Date, time.Local)
	if err != nil {
		BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
		return
	}

	transaction := models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
	}

	if err := database.DB.Create(&transaction).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建交易记录失败"))
		return
	}

	Created(c, "创建成功", transaction)
}

// List 获取交易记录列表
// @Summary 获取交易记录列表
// @Description 按日期降序返回交易记录。limit 为 0 或不传时返回全部记录；limit 大于 0 时按 page/limit 分页，hasMore 表示后面还有数据。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量，0 表示返回全部" default(0)
// @Success 200 {object} TransactionListResponse "获取成功"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数：page 从 1 开始，limit 为 0 表示全量
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit < 0 {
		req.Limit = 0
	}

	// 日期相同的记录按 id 降序，保证排序稳定、翻页不重不漏
	query := database.DB.Model(&models.Transaction{}).Order("date DESC, id DESC")

	transactions := make([]models.Transaction, 0)

	if req.Limit == 0 {
		// 全量返回
		if err := query.Find(&transactions).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "查询失败"))
			return
		}
		c.JSON(200, TransactionListResponse{
			Transactions:      transactions,
			HasMore:           false,
			TotalTransactions: int64(len(transactions)),
		})
		return
	}

	// 获取总数
	var total int64
	if err := database.DB.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 获取当前页
	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	c.JSON(200, TransactionListResponse{
		Transactions:      transactions,
		HasMore:           int64(req.Page*req.Limit) < total,
		TotalTransactions: total,
	})
}

// Update 更新交易记录
// @Summary 更新交易记录
// @Description 整体替换指定交易记录的描述、金额、类别和时间
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param id path int true "交易记录ID"
// @Param request body UpdateTransactionRequest true "交易记录信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var transaction models.Transaction
	if err := database.DB.First(&transaction, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 更新字段
	updates := make(map[string]interface{})
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Date != "" {
		date, err := time.ParseInLocation("2006-01-02 15:04:05", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
			return
		}
		updates["date"] = date
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&transaction).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	// 重新获取更新后的记录
	database.DB.First(&transaction, transaction.ID)
	SuccessWithMessage(c, "更新成功", transaction)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除指定的交易记录，重复删除同一 id 第二次返回 404
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var transaction models.Transaction
	if err := database.DB.First(&transaction, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&transaction).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
