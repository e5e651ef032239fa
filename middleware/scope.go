package middleware

import (
	"hrm/constants"

	"github.com/gin-gonic/gin"
)

// Scope là phạm vi truy cập của một phiên đã xác thực: admin thấy tất cả,
// nhân viên chỉ thấy bản ghi gắn với emp_id của mình.
type Scope struct {
	UserID uint
	Role   int
	EmpID  *uint
}

// ScopeFromContext lấy Scope do AuthMiddleware gắn vào context
func ScopeFromContext(c *gin.Context) (Scope, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return Scope{}, false
	}
	userRole, ok := c.Get("userRole")
	if !ok {
		return Scope{}, false
	}

	scope := Scope{
		UserID: userID.(uint),
		Role:   userRole.(int),
	}

	if empID, ok := c.Get("empID"); ok && empID != nil {
		if id, ok := empID.(*uint); ok {
			scope.EmpID = id
		}
	}

	return scope, true
}

func (s Scope) IsAdmin() bool {
	return s.Role == constants.RoleAdmin
}

// CanAccess kiểm tra quyền đọc bản ghi của một nhân viên.
// User nhân viên chưa gắn emp_id không thấy dữ liệu nào.
func (s Scope) CanAccess(empID uint) bool {
	if s.IsAdmin() {
		return true
	}
	return s.EmpID != nil && *s.EmpID == empID
}
