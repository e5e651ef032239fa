package dto

import (
	"time"

	"hrm/models"
)

type CreateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	BasicSalary float64 `json:"basicSalary" binding:"gte=0"`
	Avatar      string  `json:"avatar"`
}

type UpdateEmployeeRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	BasicSalary float64 `json:"basicSalary" binding:"gte=0"`
	Avatar      string  `json:"avatar"`
}

type DeleteEmployeeRequest struct {
	ID uint `json:"id" binding:"required"`
}

type EmployeeResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	BasicSalary float64   `json:"basicSalary"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ScoredEmployee là kết quả tìm kiếm gần đúng kèm điểm phù hợp
type ScoredEmployee struct {
	Employee models.Employee `json:"employee"`
	Score    int             `json:"score"`
}
