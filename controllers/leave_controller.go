package controllers

import (
	"time"

	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) LeaveController {
	return LeaveController{DB: db}
}

// CreateLeave ghi một đơn nghỉ phép. Admin ghi cho bất kỳ nhân viên;
// nhân viên chỉ ghi cho chính mình.
func (l LeaveController) CreateLeave(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !scope.IsAdmin() {
		if scope.EmpID == nil {
			response.Forbidden(c)
			return
		}
		if request.EmpID != 0 && request.EmpID != *scope.EmpID {
			response.Forbidden(c)
			return
		}
		request.EmpID = *scope.EmpID
	}

	if request.EmpID == 0 {
		response.BadRequest(c, "Thiếu empId")
		return
	}

	if err := validator.ValidateLeave(&request); err != nil {
		response.ValidationError(c, err)
		return
	}

	date := request.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	record := models.LeaveRecord{
		EmpID:     request.EmpID,
		LeaveType: request.LeaveType,
		Days:      request.Days,
		Date:      date,
	}

	if err := l.DB.Create(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, record)
}

// GetLeaves lấy toàn bộ đơn nghỉ phép kèm tên nhân viên (view của admin)
func (l LeaveController) GetLeaves(c *gin.Context) {
	var rows []dto.LeaveResponse

	err := l.DB.Model(&models.LeaveRecord{}).
		Select("leave_records.id, leave_records.emp_id, employees.name AS employee_name, leave_records.leave_type, leave_records.days, leave_records.date").
		Joins("LEFT JOIN employees ON employees.id = leave_records.emp_id").
		Order("leave_records.id").
		Scan(&rows).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rows)
}

// GetMyLeaves lấy đơn nghỉ phép của nhân viên đang đăng nhập
func (l LeaveController) GetMyLeaves(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if scope.EmpID == nil {
		response.Success(c, []models.LeaveRecord{})
		return
	}

	var records []models.LeaveRecord
	if err := l.DB.Where("emp_id = ?", *scope.EmpID).Order("id").Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, records)
}
