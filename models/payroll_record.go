package models

import "time"

// PayrollRecord là bảng lương một kỳ của một nhân viên. Không có ràng buộc
// duy nhất trên (emp_id, month, year): tạo lại cùng kỳ sẽ thêm dòng mới.
type PayrollRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmpID       uint      `gorm:"index;not null" json:"empId"`
	Month       string    `gorm:"not null" json:"month"` // tên tháng tiếng Anh
	Year        int       `gorm:"not null" json:"year"`
	Basic       float64   `json:"basic"`
	HRA         float64   `json:"hra"`
	Allowances  float64   `json:"allowances"`
	Deductions  float64   `json:"deductions"`
	NetPay      float64   `json:"netPay"`
	GeneratedOn time.Time `gorm:"autoCreateTime" json:"generatedOn"`
}
