package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrm/models"
	"hrm/routes"
	"hrm/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.PerformanceReview{},
		&models.LeaveRecord{},
		&models.AttendanceMark{},
		&models.PayrollRecord{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	router := gin.New()
	routes.SetupRoutes(router, db, rdb, melody.New())

	return router, db
}

func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	require.NoError(t, services.SeedDefaultAdmin(db))
	user, err := services.Authenticate(db, "Admin", "admin@123")
	require.NoError(t, err)

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role, EmpID: user.EmpID}, 60)
	require.NoError(t, err)
	return token
}

func employeeToken(t *testing.T, db *gorm.DB, username string, empID *uint) string {
	t.Helper()

	user, err := services.CreateUser(db, username, "password-123", 2, empID)
	require.NoError(t, err)

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role, EmpID: user.EmpID}, 60)
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func requireOK(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeEnvelope(t, w)
}
