package api

import (
	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 获取消费类别列表
// @Summary 获取消费类别列表
// @Description 返回启动时初始化的类别目录（名称、排序、颜色、图标），供表单下拉使用。
// @Description 该列表只是展示层的约定：写入交易时不会校验类别是否在列表内。
// @Tags 消费类别
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.Category
	if err := database.DB.Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}
