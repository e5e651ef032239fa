package main

import (
	"log"
	"net/http"
	"os"

	"hrm/config"
	"hrm/jobs"
	"hrm/routes"
	"hrm/services"
	"hrm/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// Tạo admin mặc định khi bảng users trống
	if err := services.SeedDefaultAdmin(config.DB); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}
	utils.LogInfo("Khởi động xong, kiểm tra admin mặc định hoàn tất")

	if err := jobs.InitCronJobs(c, config.RedisClient); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
