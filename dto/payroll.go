package dto

import "time"

type GeneratePayrollRequest struct {
	EmpID         uint     `json:"empId" binding:"required"`
	Month         string   `json:"month" binding:"required"`
	Year          int      `json:"year" binding:"required"`
	Basic         float64  `json:"basic" binding:"gte=0"`
	HRAPercentage *float64 `json:"hraPercentage"`
	Allowances    float64  `json:"allowances" binding:"gte=0"`
	Deductions    float64  `json:"deductions" binding:"gte=0"`
}

type PayrollResponse struct {
	ID           uint      `json:"id"`
	EmpID        uint      `json:"empId"`
	EmployeeName string    `json:"employeeName,omitempty"`
	Month        string    `json:"month"`
	Year         int       `json:"year"`
	Basic        float64   `json:"basic"`
	HRA          float64   `json:"hra"`
	Allowances   float64   `json:"allowances"`
	Deductions   float64   `json:"deductions"`
	NetPay       float64   `json:"netPay"`
	GeneratedOn  time.Time `json:"generatedOn"`
}

// PayslipDocument là model tài liệu phiếu lương, dùng cho JSON và PDF
type PayslipDocument struct {
	Employee    PayslipEmployeeBlock `json:"employee"`
	Payroll     PayslipPayrollBlock  `json:"payroll"`
	GeneratedOn time.Time            `json:"generatedOn"`
}

type PayslipEmployeeBlock struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

type PayslipPayrollBlock struct {
	Month      string  `json:"month"`
	Year       int     `json:"year"`
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"`
}
