// Package stats 提供交易记录的内存聚合函数。
//
// 所有函数都是无副作用的纯函数：输入为已经完整取出的交易列表，
// 不访问数据库。同样的输入（无论元素顺序）得到同样的聚合结果，
// 除显式排序的返回值外，映射的键序无意义。
package stats

import (
	"sort"
	"time"

	"fintrack/models"
)

// DayTotal 单日消费合计
type DayTotal struct {
	Day   int     `json:"day"`
	Total float64 `json:"total"`
}

// BudgetComparison 预算与实际消费的对比
type BudgetComparison struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
	Actual   float64 `json:"actual"`
}

// Total 计算所有交易的金额总和
func Total(txs []models.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		total += tx.Amount
	}
	return total
}

// ByCategory 按类别汇总金额。没有交易的类别不会出现在结果中（缺席而非零值）。
func ByCategory(txs []models.Transaction) map[string]float64 {
	result := make(map[string]float64)
	for _, tx := range txs {
		result[tx.Category] += tx.Amount
	}
	return result
}

// ByMonth 按月份名称汇总金额，月份取自交易日期的本地时间。
//
// 键是英文自然月名（如 "January"），不含年份：不同年份的同名月份
// 会合并统计。这是沿袭下来的既定行为，调用方按月份名展示图表。
func ByMonth(txs []models.Transaction) map[string]float64 {
	result := make(map[string]float64)
	for _, tx := range txs {
		month := monthName(tx.Date)
		result[month] += tx.Amount
	}
	return result
}

// ByDay 汇总指定月份内每天的消费金额，按天数升序返回。
// month 为英文自然月名，与 ByMonth 的键一致。
func ByDay(txs []models.Transaction, month string) []DayTotal {
	byDay := make(map[int]float64)
	for _, tx := range txs {
		if monthName(tx.Date) != month {
			continue
		}
		byDay[tx.Date.In(time.Local).Day()] += tx.Amount
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	result := make([]DayTotal, 0, len(days))
	for _, day := range days {
		result = append(result, DayTotal{Day: day, Total: byDay[day]})
	}
	return result
}

// BudgetVsActual 为每条预算生成一行对比：预算上限与该类别的实际消费。
// 该类别没有消费时实际值为 0；没有设置预算的类别不会出现在结果里。
// 结果顺序与传入的预算列表一致。
func BudgetVsActual(txs []models.Transaction, budgets []models.Budget) []BudgetComparison {
	actual := ByCategory(txs)
	result := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, BudgetComparison{
			Category: b.Category,
			Budget:   b.Amount,
			Actual:   actual[b.Category],
		})
	}
	return result
}

// MostRecent 返回日期最近的 n 条交易，不修改传入的切片。
// 日期相同时按 id 降序，与列表接口的排序规则保持一致。
func MostRecent(txs []models.Transaction, n int) []models.Transaction {
	if n < 0 {
		n = 0
	}

	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].Date.After(sorted[j].Date)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// monthName 取交易日期在本地时区下的英文月份名
func monthName(t time.Time) string {
	return t.In(time.Local).Month().String()
}
