package models

import "time"

type Employee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	BasicSalary float64   `gorm:"default:0" json:"basicSalary"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
