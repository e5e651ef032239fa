package routes

import (
	"hrm/constants"
	"hrm/controllers"
	middlewares "hrm/middleware"
	"hrm/services"
	"hrm/services/logger"
	"hrm/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	payrollService := services.NewPayrollService(services.PayrollServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel).WithPrefix("payroll"),
	})

	authController := controllers.NewAuthController(db)
	employeeController := controllers.NewEmployeeController(db, redisCli)
	performanceController := controllers.NewPerformanceController(db)
	leaveController := controllers.NewLeaveController(db)
	attendanceController := controllers.NewAttendanceController(db)
	payrollController := controllers.NewPayrollController(db, payrollService, notification.NewMelodyService(m))

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.POST("/auth/register", middlewares.AuthMiddleware(constants.RoleAdmin), authController.RegisterUser)
	v1.PUT("/auth/password", middlewares.AuthMiddleware(), authController.ChangePassword)

	v1.GET("/employees", middlewares.AuthMiddleware(constants.RoleAdmin), employeeController.GetEmployees)
	v1.GET("/employees/search", middlewares.AuthMiddleware(constants.RoleAdmin), employeeController.SearchEmployees)
	v1.GET("/employees/:id", middlewares.AuthMiddleware(), employeeController.GetEmployeeByID)
	v1.POST("/employees", middlewares.AuthMiddleware(constants.RoleAdmin), employeeController.CreateEmployee)
	v1.PUT("/employees", middlewares.AuthMiddleware(constants.RoleAdmin), employeeController.UpdateEmployee)
	v1.DELETE("/employees", middlewares.AuthMiddleware(constants.RoleAdmin), employeeController.DeleteEmployee)
	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleAdmin), employeeController.UploadAvatar)

	v1.POST("/performance", middlewares.AuthMiddleware(constants.RoleAdmin), performanceController.CreatePerformance)
	v1.GET("/performance", middlewares.AuthMiddleware(constants.RoleAdmin), performanceController.GetPerformance)
	v1.GET("/performance/my", middlewares.AuthMiddleware(), performanceController.GetMyPerformance)

	// Nhân viên được tự ghi nghỉ phép và điểm danh cho chính mình,
	// nhưng không được ghi đánh giá hiệu suất hay tạo bảng lương
	v1.POST("/leaves", middlewares.AuthMiddleware(), leaveController.CreateLeave)
	v1.GET("/leaves", middlewares.AuthMiddleware(constants.RoleAdmin), leaveController.GetLeaves)
	v1.GET("/leaves/my", middlewares.AuthMiddleware(), leaveController.GetMyLeaves)

	v1.POST("/attendance", middlewares.AuthMiddleware(), attendanceController.CreateAttendance)
	v1.GET("/attendance", middlewares.AuthMiddleware(constants.RoleAdmin), attendanceController.GetAttendance)
	v1.GET("/attendance/my", middlewares.AuthMiddleware(), attendanceController.GetMyAttendance)

	v1.POST("/payroll", middlewares.AuthMiddleware(constants.RoleAdmin), payrollController.GeneratePayroll)
	v1.GET("/payroll", middlewares.AuthMiddleware(constants.RoleAdmin), payrollController.GetPayrolls)
	v1.GET("/payroll/my", middlewares.AuthMiddleware(), payrollController.GetMyPayrolls)
	v1.GET("/payroll/:id/payslip", middlewares.AuthMiddleware(), payrollController.GetPayslip)
	v1.GET("/payroll/:id/payslip/pdf", middlewares.AuthMiddleware(), payrollController.GetPayslipPDF)
}
