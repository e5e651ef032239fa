package controllers

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/services/notification"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PayrollController struct {
	DB       *gorm.DB
	Payroll  *services.PayrollService
	Notifier notification.Service
}

func NewPayrollController(db *gorm.DB, payroll *services.PayrollService, notifier notification.Service) PayrollController {
	return PayrollController{
		DB:       db,
		Payroll:  payroll,
		Notifier: notifier,
	}
}

// GeneratePayroll tính và lưu bảng lương một kỳ, chỉ admin được gọi.
// Gọi lại với cùng tham số sẽ tạo thêm bản ghi mới, đây là hành vi chủ đích.
func (p PayrollController) GeneratePayroll(c *gin.Context) {
	var request dto.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePayroll(&request); err != nil {
		response.ValidationError(c, err)
		return
	}

	hraPercentage := services.DefaultHRAPercentage(request.HRAPercentage)

	record, err := p.Payroll.Generate(request.EmpID, request.Month, request.Year, request.Basic, hraPercentage, request.Allowances, request.Deductions)
	if err != nil {
		response.ServerError(c)
		return
	}

	if p.Notifier != nil {
		message := notification.NewMessageBuilder(record.EmpID, record.Month, record.Year, record.NetPay).Build()
		if err := p.Notifier.SendMessage(message); err != nil {
			log.Printf("Lỗi gửi thông báo phiếu lương: %v", err)
		}
	}

	response.Success(c, record)
}

// GetPayrolls lấy toàn bộ bảng lương kèm tên nhân viên (view của admin)
func (p PayrollController) GetPayrolls(c *gin.Context) {
	rows, err := p.Payroll.ListAll()
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rows)
}

// GetMyPayrolls lấy lịch sử lương của nhân viên đang đăng nhập
func (p PayrollController) GetMyPayrolls(c *gin.Context) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if scope.EmpID == nil {
		response.Success(c, []models.PayrollRecord{})
		return
	}

	records, err := p.Payroll.ListFor(*scope.EmpID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, records)
}

func (p PayrollController) payslipForRequest(c *gin.Context) (dto.PayslipDocument, bool) {
	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return dto.PayslipDocument{}, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return dto.PayslipDocument{}, false
	}

	record, err := p.Payroll.GetByID(uint(id))
	if err != nil {
		response.NotFound(c)
		return dto.PayslipDocument{}, false
	}

	if !scope.CanAccess(record.EmpID) {
		response.Forbidden(c)
		return dto.PayslipDocument{}, false
	}

	// Nhân viên đã bị xóa vẫn render được phiếu lương, khối nhân viên
	// chỉ còn id
	var employee models.Employee
	if err := p.DB.First(&employee, record.EmpID).Error; err != nil {
		employee = models.Employee{ID: record.EmpID}
	}

	return services.RenderSummary(employee, record), true
}

// GetPayslip trả về model tài liệu phiếu lương dạng JSON
func (p PayrollController) GetPayslip(c *gin.Context) {
	doc, ok := p.payslipForRequest(c)
	if !ok {
		return
	}

	response.Success(c, doc)
}

// GetPayslipPDF xuất phiếu lương dạng PDF
func (p PayrollController) GetPayslipPDF(c *gin.Context) {
	doc, ok := p.payslipForRequest(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := services.WritePayslipPDF(doc, &buf); err != nil {
		response.ServerError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=payslip.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
