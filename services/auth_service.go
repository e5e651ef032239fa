package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hrm/config"
	"hrm/constants"
	apperrors "hrm/errors"
	"hrm/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint  `json:"userid"`
	Role   int   `json:"role"`
	EmpID  *uint `json:"empId,omitempty"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

// HashPassword băm mật khẩu bằng bcrypt, không bao giờ lưu plaintext
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword so khớp mật khẩu với hash đã lưu
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateToken tạo access token chứa userid, role và empId
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// ParseToken xác thực chữ ký và trả về claims của token
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token không hợp lệ")
	}
	return claims, nil
}

func GetUserByUsername(db *gorm.DB, username string) (models.User, error) {
	var user models.User
	result := db.Where("username = ?", username).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng %s", username)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateUser tạo tài khoản mới, trả về lỗi phân biệt được khi username đã tồn tại
func CreateUser(db *gorm.DB, username, password string, role int, empID *uint) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, errors.New("không được để trống username, password")
	}

	if _, err := GetUserByUsername(db, username); err == nil {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeUsernameTaken, fmt.Sprintf("username %s đã được sử dụng", username), nil)
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: username,
		Password: hashedPassword,
		Role:     role,
		EmpID:    empID,
	}

	if result := db.Create(&user); result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// Authenticate tìm user theo username và so khớp mật khẩu. Không phân biệt
// "sai username" với "sai mật khẩu" để tránh dò tài khoản.
func Authenticate(db *gorm.DB, username, password string) (models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, errors.New("username hoặc mật khẩu không hợp lệ")
	}

	if err := CheckPassword(user.Password, password); err != nil {
		return models.User{}, errors.New("username hoặc mật khẩu không hợp lệ")
	}

	return user, nil
}

// ChangePassword ghi đè hash mật khẩu cho username đã tồn tại.
// Không yêu cầu mật khẩu cũ.
func ChangePassword(db *gorm.DB, username, newPassword string) error {
	user, err := GetUserByUsername(db, username)
	if err != nil {
		return err
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return db.Model(&user).Update("password", hashedPassword).Error
}

// SeedDefaultAdmin tạo tài khoản admin mặc định khi bảng users trống.
// Chạy lại lần hai không tạo thêm tài khoản nào.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	if _, err := CreateUser(db, constants.DefaultAdminUsername, constants.DefaultAdminPassword, constants.RoleAdmin, nil); err != nil {
		return err
	}

	log.Printf("Đã tạo admin mặc định: %s / %s, hãy đổi mật khẩu sau lần đăng nhập đầu tiên", constants.DefaultAdminUsername, constants.DefaultAdminPassword)
	return nil
}
