package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// buildDSN ghép chuỗi kết nối Postgres từ các biến môi trường theo prefix
// môi trường, ví dụ DEV_DB_HOST, PROD_DB_HOST.
func buildDSN(env string) string {
	prefix := strings.ToUpper(env)
	switch prefix {
	case "DEV", "PROD":
	default:
		log.Fatalf("Môi trường không hợp lệ: %s", env)
	}

	get := func(key string) string {
		return os.Getenv(prefix + "_DB_" + key)
	}

	sslMode := get("SSLMODE")
	if sslMode == "" {
		sslMode = "require"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Ho_Chi_Minh",
		get("HOST"), get("USER"), get("PASSWORD"), get("NAME"), get("PORT"), sslMode)
}

func ConnectDB() {
	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	logLevel := gormlogger.Warn
	if env == "dev" {
		logLevel = gormlogger.Info
	}

	var err error
	DB, err = gorm.Open(postgres.Open(buildDSN(env)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Lỗi kết nối database: %v", err)
	}

	log.Println("Kết nối database thành công")
}
