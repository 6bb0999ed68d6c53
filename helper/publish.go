package helper

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/logger"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	publishScheduler gocron.Scheduler
	sweepCron        *cron.Cron
)

// PublishDuePosts flips the published flag on posts whose scheduled publish
// time has passed, so the flag in the file matches what readers see.
func PublishDuePosts() {
	posts, err := database.Posts.All()
	if err != nil {
		logger.Error("publish scan failed", zap.Error(err))
		return
	}

	now := time.Now()
	changed := false
	for i := range posts {
		if posts[i].Published || posts[i].PublishAt == nil {
			continue
		}
		if !posts[i].PublishAt.After(now) {
			posts[i].Published = true
			changed = true
			logger.Info("published scheduled post", zap.String("title", posts[i].Title))
		}
	}

	if changed {
		if err := database.Posts.ReplaceAll(posts); err != nil {
			logger.Error("failed to save published posts", zap.Error(err))
		}
	}
}

// CancelStaleOrders cancels orders that sat in pending/pending for more than
// a day. Their checkout session has long expired and they will never pay.
func CancelStaleOrders() {
	orders, err := database.Orders.All()
	if err != nil {
		logger.Error("stale order scan failed", zap.Error(err))
		return
	}

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)
	changed := false
	for i := range orders {
		if orders[i].Status != constants.ORDER_STATUS_PENDING ||
			orders[i].PaymentStatus != constants.PAYMENT_STATUS_PENDING {
			continue
		}
		if orders[i].CreatedAt.Before(cutoff) {
			orders[i].Status = constants.ORDER_STATUS_CANCELLED
			orders[i].PaymentStatus = constants.PAYMENT_STATUS_CANCELLED
			orders[i].UpdatedAt = &now
			changed = true
			logger.Info("cancelled stale order", zap.String("order", orders[i].ID))
		}
	}

	if changed {
		if err := database.Orders.ReplaceAll(orders); err != nil {
			logger.Error("failed to save cancelled orders", zap.Error(err))
		}
	}
}

// StartPublishScheduler checks for due scheduled posts once a minute.
func StartPublishScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("could not create scheduler", zap.Error(err))
	}
	publishScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(PublishDuePosts),
	)
	if err != nil {
		logger.Fatal("could not schedule publish job", zap.Error(err))
	}

	s.Start()
	logger.Info("scheduled-publish job started")
}

func StopPublishScheduler() {
	if publishScheduler != nil {
		publishScheduler.Shutdown()
	}
}

// StartStaleOrderSweeper runs the stale checkout sweep every hour.
func StartStaleOrderSweeper() {
	sweepCron = cron.New()
	if _, err := sweepCron.AddFunc("@hourly", CancelStaleOrders); err != nil {
		logger.Fatal("could not schedule stale-order sweep", zap.Error(err))
	}
	sweepCron.Start()
	logger.Info("stale-order sweeper started")
}

func StopStaleOrderSweeper() {
	if sweepCron != nil {
		sweepCron.Stop()
	}
}
