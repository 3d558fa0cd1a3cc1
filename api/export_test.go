package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(transactionRows().
			AddRow(2, "Weekly groceries", 85.5, "Groceries", now, now, now, nil).
			AddRow(1, "Lunch", 23.0, "Dining Out", now.Add(-time.Hour), now, now, nil))

	router := gin.New()
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?start_time=2024-01-01&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_2024-01-01_2024-01-31.csv")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "描述")
	assert.Contains(t, body, "Weekly groceries")
	assert.Contains(t, body, "85.50")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_MissingParams(t *testing.T) {
	router := gin.New()
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?start_time=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "开始时间和结束时间")
}

func TestExportHandler_ExportCSV_BadDate(t *testing.T) {
	router := gin.New()
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?start_time=20240101&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "格式错误")
}

func TestExportHandler_ExportJSON(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(transactionRows().
			AddRow(2, "Weekly groceries", 85.5, "Groceries", now, now, now, nil).
			AddRow(1, "Lunch", 23.0, "Dining Out", now.Add(-time.Hour), now, now, nil))

	router := gin.New()
	router.GET("/export/json", NewExportHandler().ExportJSON)

	req := httptest.NewRequest("GET", "/export/json?start_time=2024-01-01&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "\"total_count\":2")
	assert.Contains(t, w.Body.String(), "\"total_amount\":108.5")
	assert.Contains(t, w.Body.String(), "Weekly groceries")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(transactionRows().
			AddRow(1, "Lunch", 23.0, "Dining Out", now, now, now, nil))

	router := gin.New()
	router.GET("/export/excel", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/export/excel?start_time=2024-01-01&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
	require.NoError(t, mock.ExpectationsWereMet())
}
