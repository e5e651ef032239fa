package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"hrm/dto"
	"hrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceAdminCreateAndValidation(t *testing.T) {
	router, db := setupRouter(t)
	token := adminToken(t, db)

	empID := createEmployee(t, router, token, "Danh Gia", 1000)

	w := doJSON(router, http.MethodPost, "/api/v1/performance", token, map[string]interface{}{
		"empId": empID, "rating": 4, "remarks": "Làm tốt",
	})
	env := requireOK(t, w)
	var review models.PerformanceReview
	require.NoError(t, json.Unmarshal(env.Data, &review))
	assert.Equal(t, 4, review.Rating)
	assert.NotEmpty(t, review.Date)

	// Rating ngoài khoảng 1..5
	for _, rating := range []int{0, 6, -1} {
		w = doJSON(router, http.MethodPost, "/api/v1/performance", token, map[string]interface{}{
			"empId": empID, "rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}
}

func TestPerformanceWriteForbiddenForEmployee(t *testing.T) {
	router, db := setupRouter(t)
	admin := adminToken(t, db)

	empID := createEmployee(t, router, admin, "Tu Danh Gia", 1000)
	empTok := employeeToken(t, db, "selfrater", &empID)

	// Nhân viên không được tự ghi đánh giá, kể cả cho chính mình
	w := doJSON(router, http.MethodPost, "/api/v1/performance", empTok, map[string]interface{}{
		"empId": empID, "rating": 5,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPerformanceToleratesMissingEmployee(t *testing.T) {
	router, db := setupRouter(t)
	token := adminToken(t, db)

	// emp_id không tồn tại vẫn ghi được
	w := doJSON(router, http.MethodPost, "/api/v1/performance", token, map[string]interface{}{
		"empId": 777, "rating": 3,
	})
	requireOK(t, w)

	w = doJSON(router, http.MethodGet, "/api/v1/performance", token, nil)
	env := requireOK(t, w)
	var rows []dto.PerformanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, uint(777), rows[0].EmpID)
	assert.Empty(t, rows[0].EmployeeName)
}

func TestLeaveSelfSubmit(t *testing.T) {
	router, db := setupRouter(t)
	admin := adminToken(t, db)

	ownID := createEmployee(t, router, admin, "Nghi Phep", 1000)
	otherID := createEmployee(t, router, admin, "Nguoi Khac", 1000)
	empTok := employeeToken(t, db, "leaver", &ownID)

	// Tự ghi cho mình, không cần truyền empId
	w := doJSON(router, http.MethodPost, "/api/v1/leaves", empTok, map[string]interface{}{
		"leaveType": "Sick", "days": 2,
	})
	env := requireOK(t, w)
	var record models.LeaveRecord
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, ownID, record.EmpID)

	// Ghi hộ người khác bị chặn
	w = doJSON(router, http.MethodPost, "/api/v1/leaves", empTok, map[string]interface{}{
		"empId": otherID, "leaveType": "Casual", "days": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeaveValidation(t *testing.T) {
	router, db := setupRouter(t)
	token := adminToken(t, db)

	// Loại nghỉ ngoài tập Sick, Casual, Earned
	w := doJSON(router, http.MethodPost, "/api/v1/leaves", token, map[string]interface{}{
		"empId": 1, "leaveType": "Vacation", "days": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Số ngày phải >= 1
	w = doJSON(router, http.MethodPost, "/api/v1/leaves", token, map[string]interface{}{
		"empId": 1, "leaveType": "Earned", "days": -2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaveListsScopedPerEmployee(t *testing.T) {
	router, db := setupRouter(t)
	admin := adminToken(t, db)

	ownID := createEmployee(t, router, admin, "Cua Minh", 1000)
	otherID := createEmployee(t, router, admin, "Cua Nguoi", 1000)

	for _, empID := range []uint{ownID, otherID, otherID} {
		w := doJSON(router, http.MethodPost, "/api/v1/leaves", admin, map[string]interface{}{
			"empId": empID, "leaveType": "Casual", "days": 1,
		})
		requireOK(t, w)
	}

	empTok := employeeToken(t, db, "leavescope", &ownID)

	w := doJSON(router, http.MethodGet, "/api/v1/leaves/my", empTok, nil)
	env := requireOK(t, w)
	var mine []models.LeaveRecord
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, ownID, mine[0].EmpID)

	// Danh sách đầy đủ chỉ dành cho admin
	w = doJSON(router, http.MethodGet, "/api/v1/leaves", empTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/leaves", admin, nil)
	env = requireOK(t, w)
	var all []dto.LeaveResponse
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 3)
}

func TestAttendanceSelfSubmitNoDedup(t *testing.T) {
	router, db := setupRouter(t)
	admin := adminToken(t, db)

	empID := createEmployee(t, router, admin, "Diem Danh", 1000)
	empTok := employeeToken(t, db, "checker", &empID)

	// Gửi hai lần cùng ngày, mỗi lần là một dòng mới
	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodPost, "/api/v1/attendance", empTok, map[string]interface{}{
			"date": "2024-03-15", "status": "Present",
		})
		requireOK(t, w)
	}

	var count int64
	require.NoError(t, db.Model(&models.AttendanceMark{}).
		Where("emp_id = ? AND date = ?", empID, "2024-03-15").
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAttendanceValidation(t *testing.T) {
	router, db := setupRouter(t)
	token := adminToken(t, db)

	w := doJSON(router, http.MethodPost, "/api/v1/attendance", token, map[string]interface{}{
		"empId": 1, "status": "Late",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/attendance", token, map[string]interface{}{
		"empId": 1, "status": "Absent", "date": "15/03/2024",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivityEmptyForUnlinkedAccount(t *testing.T) {
	router, db := setupRouter(t)
	admin := adminToken(t, db)

	// Có dữ liệu của người khác trong kho
	w := doJSON(router, http.MethodPost, "/api/v1/leaves", admin, map[string]interface{}{
		"empId": 5, "leaveType": "Sick", "days": 1,
	})
	requireOK(t, w)

	empTok := employeeToken(t, db, "floating", nil)

	for _, path := range []string{"/api/v1/performance/my", "/api/v1/leaves/my", "/api/v1/attendance/my"} {
		w := doJSON(router, http.MethodGet, path, empTok, nil)
		env := requireOK(t, w)
		var rows []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Empty(t, rows, path)
	}

	// Tài khoản chưa gắn emp_id cũng không được tự ghi
	w = doJSON(router, http.MethodPost, "/api/v1/attendance", empTok, map[string]interface{}{
		"status": "Present",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
