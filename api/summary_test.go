package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsHandler_GetSummary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.Local)
	// 先全量取交易，再取预算
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(transactionRows().
			AddRow(3, "Rent January", 400.0, "Rent", now, now, now, nil).
			AddRow(2, "Rent extra", 300.0, "Rent", now.Add(-time.Hour), now, now, nil).
			AddRow(1, "Misc", 50.0, "Other", now.Add(-2*time.Hour), now, now, nil))
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(budgetRows().AddRow(1, "Rent", 1000.0, now, now, nil))

	router := gin.New()
	router.GET("/statistics/summary", NewStatisticsHandler().GetSummary)

	req := httptest.NewRequest("GET", "/statistics/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			TotalExpenses float64            `json:"total_expenses"`
			ByCategory    map[string]float64 `json:"by_category"`
			ByMonth       map[string]float64 `json:"by_month"`
			BudgetVsActual []struct {
				Category string  `json:"category"`
				Budget   float64 `json:"budget"`
				Actual   float64 `json:"actual"`
			} `json:"budget_vs_actual"`
			Recent []map[string]interface{} `json:"recent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.InDelta(t, 750, resp.Data.TotalExpenses, 0.0001)
	assert.InDelta(t, 700, resp.Data.ByCategory["Rent"], 0.0001)
	assert.InDelta(t, 50, resp.Data.ByCategory["Other"], 0.0001)
	assert.InDelta(t, 750, resp.Data.ByMonth["January"], 0.0001)

	// 只有设置了预算的类别出现在对比中
	require.Len(t, resp.Data.BudgetVsActual, 1)
	assert.Equal(t, "Rent", resp.Data.BudgetVsActual[0].Category)
	assert.InDelta(t, 1000, resp.Data.BudgetVsActual[0].Budget, 0.0001)
	assert.InDelta(t, 700, resp.Data.BudgetVsActual[0].Actual, 0.0001)

	assert.Len(t, resp.Data.Recent, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsHandler_GetDailyBreakdown(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	jan5 := time.Date(2024, 1, 5, 9, 0, 0, 0, time.Local)
	jan20 := time.Date(2024, 1, 20, 18, 0, 0, 0, time.Local)
	feb5 := time.Date(2024, 2, 5, 9, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(transactionRows().
			AddRow(1, "a", 30.0, "Other", jan5, jan5, jan5, nil).
			AddRow(2, "b", 20.0, "Other", jan5, jan5, jan5, nil).
			AddRow(3, "c", 100.0, "Rent", jan20, jan20, jan20, nil).
			AddRow(4, "d", 999.0, "Other", feb5, feb5, feb5, nil))

	router := gin.New()
	router.GET("/statistics/daily", NewStatisticsHandler().GetDailyBreakdown)

	req := httptest.NewRequest("GET", "/statistics/daily?month=January", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			Day   int     `json:"day"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 只统计 January，按天数升序
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 5, resp.Data[0].Day)
	assert.InDelta(t, 50, resp.Data[0].Total, 0.0001)
	assert.Equal(t, 20, resp.Data[1].Day)
	assert.InDelta(t, 100, resp.Data[1].Total, 0.0001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsHandler_GetDailyBreakdown_MissingMonth(t *testing.T) {
	router := gin.New()
	router.GET("/statistics/daily", NewStatisticsHandler().GetDailyBreakdown)

	req := httptest.NewRequest("GET", "/statistics/daily", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
