package controllers

import (
	"hrm/dto"
	"hrm/middleware"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) AuthController {
	return AuthController{DB: db}
}

// Login xác thực username/password và trả về access token.
// Sai username hay sai mật khẩu đều trả cùng một thông báo.
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.Authenticate(a.DB, input.Username, input.Password)
	if err != nil {
		response.BadRequest(c, "Username hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
		EmpID:  user.EmpID,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		UserRole:  user.Role,
		EmpID:     user.EmpID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func (a AuthController) Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// RegisterUser tạo tài khoản mới, chỉ admin được gọi.
// Username trùng trả về lỗi phân biệt được, không crash.
func (a AuthController) RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRegister(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := services.CreateUser(a.DB, input.Username, input.Password, input.Role, input.EmpID)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"empId":    user.EmpID,
	})
}

// ChangePassword ghi đè mật khẩu, không yêu cầu mật khẩu cũ.
// Admin đổi được cho bất kỳ username; nhân viên chỉ đổi của chính mình.
func (a AuthController) ChangePassword(c *gin.Context) {
	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	username := input.Username
	if username == "" {
		var current models.User
		if err := a.DB.First(&current, scope.UserID).Error; err != nil {
			response.ServerError(c)
			return
		}
		username = current.Username
	}

	if !scope.IsAdmin() {
		user, err := services.GetUserByUsername(a.DB, username)
		if err != nil || user.ID != scope.UserID {
			response.Forbidden(c)
			return
		}
	}

	if err := services.ChangePassword(a.DB, username, input.NewPassword); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Success(c, nil)
}
