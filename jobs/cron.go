package jobs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// các key cache cần làm mới mỗi đêm
var cacheKeys = []string{"employees:all"}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, redisCli *redis.Client) error {
	// Xóa cache lúc 0h mỗi ngày để danh sách không bị lệch quá lâu
	_, err := c.AddFunc("0 0 * * *", func() {
		if redisCli == nil {
			return
		}
		for _, key := range cacheKeys {
			if err := redisCli.Del(context.Background(), key).Err(); err != nil {
				log.Printf("Lỗi khi xóa cache %s: %v", key, err)
			}
		}
		log.Println("Đã làm mới cache danh sách")
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
