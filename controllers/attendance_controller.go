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

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) AttendanceController {
	return AttendanceController{DB: db}
}

// CreateAttendance ghi một lần điểm danh. Admin ghi cho bất kỳ nhân viên;
// nhân viên chỉ ghi cho chính mình. Mỗi lần gửi là một dòng mới,
// kể cả trùng ngày.
func (a AttendanceController) CreateAttendance(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateAttendanceRequest
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

	if err := validator.ValidateAttendance(&request); err != nil {
		response.ValidationError(c, err)
		return
	}

	date := request.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	mark := models.AttendanceMark{
		EmpID:  request.EmpID,
		Date:   date,
		Status: request.Status,
	}

	if err := a.DB.Create(&mark).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, mark)
}

// GetAttendance lấy toàn bộ điểm danh kèm tên nhân viên (view của admin)
func (a AttendanceController) GetAttendance(c *gin.Context) {
	var rows []dto.AttendanceResponse

	err := a.DB.Model(&models.AttendanceMark{}).
		Select("attendance_marks.id, attendance_marks.emp_id, employees.name AS employee_name, attendance_marks.date, attendance_marks.status").
		Joins("LEFT JOIN employees ON employees.id = attendance_marks.emp_id").
		Order("attendance_marks.id").
		Scan(&rows).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rows)
}

// GetMyAttendance lấy điểm danh của nhân viên đang đăng nhập
func (a AttendanceController) GetMyAttendance(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if scope.EmpID == nil {
		response.Success(c, []models.AttendanceMark{})
		return
	}

	var marks []models.AttendanceMark
	if err := a.DB.Where("emp_id = ?", *scope.EmpID).Order("id").Find(&marks).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, marks)
}
