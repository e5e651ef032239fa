package dto

import "time"

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     int    `json:"role"`
	EmpID    *uint  `json:"empId"`
}

// ChangePasswordInput ghi đè mật khẩu cho username, không yêu cầu mật khẩu cũ
type ChangePasswordInput struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type UserLoginResponse struct {
	UserID    uint      `json:"id"`
	Username  string    `json:"username"`
	UserRole  int       `json:"role"`
	EmpID     *uint     `json:"empId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
