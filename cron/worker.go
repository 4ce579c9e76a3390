package cron

import (
	"context"
	"log"
	"time"

	"amberhall/config"
	"amberhall/services/booking"
	"amberhall/services/notification"

	"github.com/hibiken/asynq"
)

const (
	TypeRetentionSweep = "maintenance:sweep"
	TypeAdminDigest    = "maintenance:digest"

	digestWindowDays = 7
)

// InitMaintenanceWorker runs the async maintenance worker and its scheduler
// in the background. The sweep task clears past-date bookings every night;
// the digest task mails the administrator the upcoming week's bookings.
func InitMaintenanceWorker(bookingSvc booking.BookingService, mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRetentionSweep, handleRetentionSweep(bookingSvc))
	mux.HandleFunc(TypeAdminDigest, handleAdminDigest(bookingSvc, mailer))

	go runScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[MaintenanceWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MaintenanceWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MaintenanceWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// runScheduler enqueues the recurring maintenance tasks. The sweep fires
// shortly after midnight so past dates age out before anyone looks at the
// calendar; the digest fires at 07:00 local time.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.Local,
	})

	if _, err := scheduler.Register("10 0 * * *", asynq.NewTask(TypeRetentionSweep, nil)); err != nil {
		log.Printf("[MaintenanceWorker] failed to register sweep schedule: %v", err)
		return
	}
	if _, err := scheduler.Register("0 7 * * *", asynq.NewTask(TypeAdminDigest, nil)); err != nil {
		log.Printf("[MaintenanceWorker] failed to register digest schedule: %v", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[MaintenanceWorker] scheduler stopped: %v", err)
	}
}

func handleRetentionSweep(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		removed, err := bookingSvc.SweepExpired(ctx)
		if err != nil {
			log.Printf("[MaintenanceWorker] retention sweep failed: %v", err)
			return err
		}
		if removed > 0 {
			log.Printf("[MaintenanceWorker] retention sweep removed %d past booking(s)", removed)
		}
		return nil
	}
}

func handleAdminDigest(bookingSvc booking.BookingService, mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		from := booking.Today()
		to := time.Now().AddDate(0, 0, digestWindowDays).Format("2006-01-02")

		upcoming, err := bookingSvc.ListBetween(ctx, from, to)
		if err != nil {
			log.Printf("[MaintenanceWorker] digest query failed: %v", err)
			return err
		}
		if len(upcoming) == 0 {
			return nil
		}

		if err := mailer.SendAdminDigest(ctx, upcoming); err != nil {
			log.Printf("[MaintenanceWorker] digest email failed: %v", err)
			return err
		}
		return nil
	}
}
