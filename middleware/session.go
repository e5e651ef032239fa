package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware gán sessionId cho mỗi request, tạo mới nếu client
// chưa gửi kèm. SessionId được trả lại qua header để client giữ xuyên suốt.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(sessionHeader)
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)
		c.Writer.Header().Set(sessionHeader, sessionId)

		c.Next()
	}
}

// SessionID lấy sessionId đã gán từ context
func SessionID(c *gin.Context) string {
	return c.GetString("sessionId")
}
