package models

import "time"

type PerformanceReview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EmpID     uint      `gorm:"index;not null" json:"empId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Remarks   string    `json:"remarks"`
	Date      string    `json:"date"` // ngày đánh giá, dạng 2006-01-02
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
