package services

import (
	"hrm/constants"
	"hrm/dto"
	"hrm/models"
	"hrm/services/logger"

	"gorm.io/gorm"
)

// PayrollService tính và lưu bảng lương theo kỳ
type PayrollService struct {
	db     *gorm.DB
	logger logger.Logger
}

type PayrollServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPayrollService(opts PayrollServiceOptions) *PayrollService {
	return &PayrollService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// Generate tính lương và lưu một dòng mới kèm thời điểm tạo.
// Không kiểm tra trùng (emp, month, year): tạo lại cùng kỳ sẽ ra bản ghi mới.
// Không kiểm tra nhân viên tồn tại, không chặn net âm.
func (s *PayrollService) Generate(empID uint, month string, year int, basic, hraPercentage, allowances, deductions float64) (models.PayrollRecord, error) {
	hra := basic * hraPercentage
	gross := basic + hra + allowances
	netPay := gross - deductions

	record := models.PayrollRecord{
		EmpID:      empID,
		Month:      month,
		Year:       year,
		Basic:      basic,
		HRA:        hra,
		Allowances: allowances,
		Deductions: deductions,
		NetPay:     netPay,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return models.PayrollRecord{}, err
	}

	s.logger.Info("Đã tạo bảng lương #%d cho nhân viên %d kỳ %s/%d, thực lãnh %.2f", record.ID, empID, month, year, netPay)
	return record, nil
}

// ListAll trả về toàn bộ bảng lương kèm tên nhân viên (view của admin).
// LEFT JOIN để bản ghi mồ côi vẫn hiển thị với tên rỗng.
func (s *PayrollService) ListAll() ([]dto.PayrollResponse, error) {
	var rows []dto.PayrollResponse

	err := s.db.Model(&models.PayrollRecord{}).
		Select("payroll_records.id, payroll_records.emp_id, employees.name AS employee_name, payroll_records.month, payroll_records.year, payroll_records.basic, payroll_records.hra, payroll_records.allowances, payroll_records.deductions, payroll_records.net_pay, payroll_records.generated_on").
		Joins("LEFT JOIN employees ON employees.id = payroll_records.emp_id").
		Order("payroll_records.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// ListFor trả về lịch sử lương của một nhân viên, sắp theo năm giảm dần rồi
// theo tên tháng giảm dần. Sắp theo tên tháng (không theo lịch) là hành vi
// giữ nguyên từ trước, chưa chốt có đổi hay không.
func (s *PayrollService) ListFor(empID uint) ([]models.PayrollRecord, error) {
	var records []models.PayrollRecord

	err := s.db.Where("emp_id = ?", empID).
		Order("year DESC").
		Order("month DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetByID lấy một bảng lương theo id
func (s *PayrollService) GetByID(id uint) (models.PayrollRecord, error) {
	var record models.PayrollRecord
	if err := s.db.First(&record, id).Error; err != nil {
		return models.PayrollRecord{}, err
	}
	return record, nil
}

// RenderSummary dựng model tài liệu phiếu lương từ nhân viên và bảng lương
func RenderSummary(emp models.Employee, record models.PayrollRecord) dto.PayslipDocument {
	return dto.PayslipDocument{
		Employee: dto.PayslipEmployeeBlock{
			ID:          emp.ID,
			Name:        emp.Name,
			Department:  emp.Department,
			Designation: emp.Designation,
		},
		Payroll: dto.PayslipPayrollBlock{
			Month:      record.Month,
			Year:       record.Year,
			Basic:      record.Basic,
			HRA:        record.HRA,
			Allowances: record.Allowances,
			Deductions: record.Deductions,
			NetPay:     record.NetPay,
		},
		GeneratedOn: record.GeneratedOn,
	}
}

// DefaultHRAPercentage trả về tỷ lệ HRA khi request không truyền
func DefaultHRAPercentage(pct *float64) float64 {
	if pct == nil {
		return constants.DefaultHRAPercentage
	}
	return *pct
}
