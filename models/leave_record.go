package models

import "time"

type LeaveRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EmpID     uint      `gorm:"index;not null" json:"empId"`
	LeaveType string    `gorm:"not null" json:"leaveType"` // Sick, Casual, Earned
	Days      int       `gorm:"not null" json:"days"`
	Date      string    `json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
