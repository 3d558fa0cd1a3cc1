package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "category", "amount", "created_at", "updated_at", "deleted_at"})
}

func TestBudgetHandler_Set_Insert(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 该类别还没有预算：查询为空，走新建
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs("Rent").
		WillReturnRows(budgetRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budgets`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/budgets", NewBudgetHandler().Set)

	body := `{"category":"Rent","amount":1000}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "预算已创建", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Set_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// 该类别已有预算：替换金额而不是新建第二条
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs("Rent").
		WillReturnRows(budgetRows().AddRow(1, "Rent", 800.0, now, now, nil))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `budgets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/budgets", NewBudgetHandler().Set)

	body := `{"category":"Rent","amount":1200}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "预算已更新", resp["message"])

	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 1200, data["amount"].(float64), 0.0001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Set_InvalidAmount(t *testing.T) {
	router := gin.New()
	router.POST("/budgets", NewBudgetHandler().Set)

	// amount 必须为正数
	body := `{"category":"Rent","amount":-5}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestBudgetHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(budgetRows().
			AddRow(2, "Groceries", 500.0, now, now, nil).
			AddRow(1, "Rent", 1000.0, now, now, nil))

	router := gin.New()
	router.GET("/budgets", NewBudgetHandler().List)

	req := httptest.NewRequest("GET", "/budgets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Groceries", resp[0]["category"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_List_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(budgetRows())

	router := gin.New()
	router.GET("/budgets", NewBudgetHandler().List)

	req := httptest.NewRequest("GET", "/budgets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// 空列表返回 [] 而不是 null
	assert.Equal(t, "[]", w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
