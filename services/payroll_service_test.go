package services

import (
	"testing"

	"hrm/models"
	"hrm/services/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.PerformanceReview{},
		&models.LeaveRecord{},
		&models.AttendanceMark{},
		&models.PayrollRecord{},
	))

	return db
}

func newPayrollService(t *testing.T) (*PayrollService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewPayrollService(PayrollServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
	return svc, db
}

func TestGenerateComputesNetPay(t *testing.T) {
	svc, _ := newPayrollService(t)

	record, err := svc.Generate(1, "March", 2025, 50000, 0.2, 2000, 1500)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, record.HRA)
	assert.Equal(t, 60500.0, record.NetPay)
	assert.NotZero(t, record.ID)
	assert.False(t, record.GeneratedOn.IsZero())
}

func TestGenerateDoesNotClampNegativeNetPay(t *testing.T) {
	svc, _ := newPayrollService(t)

	record, err := svc.Generate(1, "March", 2025, 1000, 0.2, 0, 5000)
	require.NoError(t, err)

	assert.Equal(t, -3800.0, record.NetPay)
}

func TestGenerateAllowsDuplicatePeriods(t *testing.T) {
	svc, db := newPayrollService(t)

	first, err := svc.Generate(3, "June", 2025, 40000, 0.2, 0, 0)
	require.NoError(t, err)
	second, err := svc.Generate(3, "June", 2025, 40000, 0.2, 0, 0)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.PayrollRecord{}).Where("emp_id = ?", 3).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGenerateToleratesMissingEmployee(t *testing.T) {
	svc, _ := newPayrollService(t)

	// emp 999 không tồn tại, vẫn tạo được bản ghi
	record, err := svc.Generate(999, "July", 2025, 10000, 0.2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(999), record.EmpID)
}

func TestListForSortsByYearThenMonthName(t *testing.T) {
	svc, _ := newPayrollService(t)

	_, err := svc.Generate(5, "April", 2024, 10000, 0.2, 0, 0)
	require.NoError(t, err)
	_, err = svc.Generate(5, "January", 2024, 10000, 0.2, 0, 0)
	require.NoError(t, err)
	_, err = svc.Generate(5, "September", 2023, 10000, 0.2, 0, 0)
	require.NoError(t, err)

	records, err := svc.ListFor(5)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Sắp theo tên tháng, không theo lịch: "January" đứng trước "April"
	// khi giảm dần
	assert.Equal(t, 2024, records[0].Year)
	assert.Equal(t, "January", records[0].Month)
	assert.Equal(t, 2024, records[1].Year)
	assert.Equal(t, "April", records[1].Month)
	assert.Equal(t, 2023, records[2].Year)
}

func TestListForReturnsOnlyRequestedEmployee(t *testing.T) {
	svc, _ := newPayrollService(t)

	_, err := svc.Generate(7, "May", 2025, 10000, 0.2, 0, 0)
	require.NoError(t, err)
	_, err = svc.Generate(8, "May", 2025, 20000, 0.2, 0, 0)
	require.NoError(t, err)

	records, err := svc.ListFor(7)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint(7), records[0].EmpID)
}

func TestListAllJoinsEmployeeNameAndToleratesOrphans(t *testing.T) {
	svc, db := newPayrollService(t)

	emp := models.Employee{Name: "Nguyen Van A", Department: "Kế toán"}
	require.NoError(t, db.Create(&emp).Error)

	_, err := svc.Generate(emp.ID, "May", 2025, 10000, 0.2, 0, 0)
	require.NoError(t, err)
	_, err = svc.Generate(emp.ID+100, "May", 2025, 10000, 0.2, 0, 0)
	require.NoError(t, err)

	rows, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Nguyen Van A", rows[0].EmployeeName)
	assert.Empty(t, rows[1].EmployeeName)
}

func TestRenderSummary(t *testing.T) {
	emp := models.Employee{ID: 4, Name: "Tran Thi B", Department: "Nhân sự", Designation: "Chuyên viên"}
	record := models.PayrollRecord{
		ID: 9, EmpID: 4, Month: "August", Year: 2025,
		Basic: 30000, HRA: 6000, Allowances: 1000, Deductions: 500, NetPay: 36500,
	}

	doc := RenderSummary(emp, record)

	assert.Equal(t, uint(4), doc.Employee.ID)
	assert.Equal(t, "Tran Thi B", doc.Employee.Name)
	assert.Equal(t, "Nhân sự", doc.Employee.Department)
	assert.Equal(t, "August", doc.Payroll.Month)
	assert.Equal(t, 36500.0, doc.Payroll.NetPay)
}

func TestDefaultHRAPercentage(t *testing.T) {
	assert.Equal(t, 0.2, DefaultHRAPercentage(nil))

	custom := 0.35
	assert.Equal(t, 0.35, DefaultHRAPercentage(&custom))
}
