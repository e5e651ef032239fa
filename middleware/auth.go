package middleware

import (
	"strings"

	"hrm/response"
	"hrm/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication, kiểm tra role nếu có yêu cầu
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == claims.UserInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context
		c.Set("userID", claims.UserInfo.UserId)
		c.Set("userRole", claims.UserInfo.Role)
		c.Set("empID", claims.UserInfo.EmpID)
		c.Next()
	}
}
