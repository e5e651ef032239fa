package controllers

import (
	"context"
	"log"
	"strconv"

	"hrm/config"
	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const employeeCacheKey = "employees:all"

type EmployeeController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewEmployeeController(db *gorm.DB, redisCli *redis.Client) EmployeeController {
	return EmployeeController{
		DB:    db,
		Redis: redisCli,
	}
}

func (e EmployeeController) invalidateCache() {
	if e.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, e.Redis, employeeCacheKey); err != nil {
		log.Printf("Không thể xóa cache %s: %v", employeeCacheKey, err)
	}
}

// GetEmployees lấy danh sách nhân viên theo thứ tự tạo, có phân trang.
// Danh sách đầy đủ được cache ở Redis.
func (e EmployeeController) GetEmployees(c *gin.Context) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var employees []models.Employee

	cached := false
	if e.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, e.Redis, employeeCacheKey, &employees); err == nil && len(employees) > 0 {
			cached = true
		}
	}

	if !cached {
		if err := e.DB.Order("id").Find(&employees).Error; err != nil {
			response.ServerError(c)
			return
		}
		if e.Redis != nil && len(employees) > 0 {
			_ = services.SetToRedis(config.Ctx, e.Redis, employeeCacheKey, employees, services.DefaultCacheTTL)
		}
	}

	total := len(employees)
	startIdx := page * limit
	endIdx := startIdx + limit
	if startIdx >= total {
		employees = []models.Employee{}
	} else if endIdx > total {
		employees = employees[startIdx:]
	} else {
		employees = employees[startIdx:endIdx]
	}

	employeeResponses := make([]dto.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		employeeResponses = append(employeeResponses, dto.EmployeeResponse{
			ID:          emp.ID,
			Name:        emp.Name,
			Department:  emp.Department,
			Designation: emp.Designation,
			BasicSalary: emp.BasicSalary,
			Avatar:      emp.Avatar,
			CreatedAt:   emp.CreatedAt,
			UpdatedAt:   emp.UpdatedAt,
		})
	}

	response.SuccessWithPagination(c, employeeResponses, page, limit, total)
}

// GetEmployeeByID lấy chi tiết một nhân viên. Admin xem được tất cả,
// nhân viên chỉ xem được hồ sơ gắn với tài khoản của mình.
func (e EmployeeController) GetEmployeeByID(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if !scope.CanAccess(uint(id)) {
		response.Forbidden(c)
		return
	}

	var employee models.Employee
	if err := e.DB.First(&employee, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, employee)
}

// CreateEmployee tạo nhân viên mới
func (e EmployeeController) CreateEmployee(c *gin.Context) {
	var request dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateEmployee(request.Name, request.BasicSalary); err != nil {
		response.ValidationError(c, err)
		return
	}

	employee := models.Employee{
		Name:        request.Name,
		Department:  request.Department,
		Designation: request.Designation,
		BasicSalary: request.BasicSalary,
		Avatar:      request.Avatar,
	}

	if err := e.DB.Create(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateCache()

	response.Success(c, employee)
}

// UpdateEmployee cập nhật hồ sơ nhân viên. Không kiểm tra tồn tại trước khi
// UPDATE: id không tồn tại là một no-op, vẫn trả thành công.
func (e EmployeeController) UpdateEmployee(c *gin.Context) {
	var request dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateEmployee(request.Name, request.BasicSalary); err != nil {
		response.ValidationError(c, err)
		return
	}

	updates := map[string]interface{}{
		"name":         request.Name,
		"department":   request.Department,
		"designation":  request.Designation,
		"basic_salary": request.BasicSalary,
		"avatar":       request.Avatar,
	}

	if err := e.DB.Model(&models.Employee{}).Where("id = ?", request.ID).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateCache()

	response.Success(c, gin.H{"id": request.ID})
}

// DeleteEmployee xóa đúng một dòng nhân viên. Các bản ghi đánh giá, nghỉ phép,
// điểm danh, bảng lương và tài khoản tham chiếu tới nó được giữ nguyên.
func (e EmployeeController) DeleteEmployee(c *gin.Context) {
	var request dto.DeleteEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := e.DB.Delete(&models.Employee{}, request.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateCache()

	response.Success(c, nil)
}

// SearchEmployees tìm kiếm gần đúng theo tên, phòng ban, chức danh
func (e EmployeeController) SearchEmployees(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu tham số q")
		return
	}

	var employees []models.Employee
	if err := e.DB.Order("id").Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	scored := services.SearchEmployees(query, employees)

	results := make([]dto.EmployeeResponse, 0, len(scored))
	for _, s := range scored {
		results = append(results, dto.EmployeeResponse{
			ID:          s.Employee.ID,
			Name:        s.Employee.Name,
			Department:  s.Employee.Department,
			Designation: s.Employee.Designation,
			BasicSalary: s.Employee.BasicSalary,
			Avatar:      s.Employee.Avatar,
			CreatedAt:   s.Employee.CreatedAt,
			UpdatedAt:   s.Employee.UpdatedAt,
		})
	}

	response.Success(c, results)
}

// UploadAvatar upload ảnh đại diện nhân viên lên Cloudinary
func (e EmployeeController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
	if err != nil {
		response.ServerError(c)
		return
	}

	if empIDStr := c.Query("empId"); empIDStr != "" {
		if empID, convErr := strconv.ParseUint(empIDStr, 10, 64); convErr == nil {
			if err := e.DB.Model(&models.Employee{}).Where("id = ?", uint(empID)).Update("avatar", resp.SecureURL).Error; err != nil {
				response.ServerError(c)
				return
			}
			e.invalidateCache()
		}
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}
