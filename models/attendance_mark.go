package models

import "time"

// AttendanceMark là một lần điểm danh. Không khử trùng lặp theo ngày:
// mỗi lần gửi là một dòng mới.
type AttendanceMark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EmpID     uint      `gorm:"index;not null" json:"empId"`
	Date      string    `json:"date"`
	Status    string    `gorm:"not null" json:"status"` // Present, Absent
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
