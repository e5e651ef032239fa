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

type PerformanceController struct {
	DB *gorm.DB
}

func NewPerformanceController(db *gorm.DB) PerformanceController {
	return PerformanceController{DB: db}
}

// CreatePerformance ghi một đánh giá hiệu suất, chỉ admin được gọi.
// Không kiểm tra nhân viên tồn tại: bản ghi mồ côi được chấp nhận.
func (p PerformanceController) CreatePerformance(c *gin.Context) {
	var request dto.CreatePerformanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePerformance(&request); err != nil {
		response.ValidationError(c, err)
		return
	}

	date := request.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	review := models.PerformanceReview{
		EmpID:   request.EmpID,
		Rating:  request.Rating,
		Remarks: request.Remarks,
		Date:    date,
	}

	if err := p.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, review)
}

// GetPerformance lấy toàn bộ đánh giá kèm tên nhân viên (view của admin)
func (p PerformanceController) GetPerformance(c *gin.Context) {
	var rows []dto.PerformanceResponse

	err := p.DB.Model(&models.PerformanceReview{}).
		Select("performance_reviews.id, performance_reviews.emp_id, employees.name AS employee_name, performance_reviews.rating, performance_reviews.remarks, performance_reviews.date").
		Joins("LEFT JOIN employees ON employees.id = performance_reviews.emp_id").
		Order("performance_reviews.id").
		Scan(&rows).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rows)
}

// GetMyPerformance lấy đánh giá của nhân viên đang đăng nhập.
// Tài khoản chưa gắn emp_id thấy danh sách rỗng.
func (p PerformanceController) GetMyPerformance(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if scope.EmpID == nil {
		response.Success(c, []models.PerformanceReview{})
		return
	}

	var reviews []models.PerformanceReview
	if err := p.DB.Where("emp_id = ?", *scope.EmpID).Order("id").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, reviews)
}
