// services/digest_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"minimind-backend/models"
	"minimind-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DigestService emails the site owner a daily summary of inbox activity:
// contact messages received today, total unread messages, and orders still
// pending. It is a scheduled courtesy mail, not a delivery queue; a failed
// run is logged and the next one starts fresh.
type DigestService struct {
	db     *gorm.DB
	mailer *Mailer
}

func NewDigestService(db *gorm.DB, mailer *Mailer) *DigestService {
	return &DigestService{db: db, mailer: mailer}
}

func (s *DigestService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyDigest)

	c.Start()
	log.Println("Daily digest scheduler started")
}

func (s *DigestService) SendDailyDigest() {
	var todayMessages, unreadMessages, pendingOrders int64

	since := utils.BeginningOfDay(time.Now())
	if err := s.db.Model(&models.Message{}).Where("received_at >= ?", since).Count(&todayMessages).Error; err != nil {
		log.Printf("Digest: failed to count today's messages: %v", err)
		return
	}
	if err := s.db.Model(&models.Message{}).Where("read = ?", false).Count(&unreadMessages).Error; err != nil {
		log.Printf("Digest: failed to count unread messages: %v", err)
		return
	}
	if err := s.db.Model(&models.Order{}).Where("status = ?", "pending").Count(&pendingOrders).Error; err != nil {
		log.Printf("Digest: failed to count pending orders: %v", err)
		return
	}

	if todayMessages == 0 && unreadMessages == 0 && pendingOrders == 0 {
		log.Println("Digest: nothing to report, skipping")
		return
	}

	body := fmt.Sprintf(`Daily summary for %s

Contact messages received today: %d
Unread contact messages: %d
Orders still pending: %d

Please check the admin dashboard for details.
`, since.Format("2006-01-02"), todayMessages, unreadMessages, pendingOrders)

	if err := s.mailer.SendDigest("Daily Dashboard Digest", body); err != nil {
		log.Printf("Digest: failed to send: %v", err)
		return
	}
	log.Println("Daily digest sent")
}
