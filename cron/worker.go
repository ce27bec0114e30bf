package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lexhub/config"
	consultationRepo "lexhub/database/repository/consultation"
	lawyerRepo "lexhub/database/repository/lawyer"
	"lexhub/models"
	"lexhub/services/notification"
	"lexhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeConsultationReminder = "reminder:consultation"

// scanInterval is how often upcoming consultations are swept for
// reminder scheduling.
const scanInterval = time.Minute

type reminderPayload struct {
	ConsultationID string `json:"consultationId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// InitReminderWorker starts the background reminder pipeline: a sweeper
// that enqueues a reminder task per upcoming consultation, and an asynq
// worker that delivers the emails when they fire.
func InitReminderWorker(notifSvc notification.NotificationService, consultations consultationRepo.ConsultationRepository, lawyers lawyerRepo.LawyerRepository) {
	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeConsultationReminder, handleReminderTask(notifSvc, consultations, lawyers))

	go func() {
		utils.GetLogger().Info("Starting reminder worker")
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("Reminder worker stopped", zap.Error(err))
		}
	}()

	client := asynq.NewClient(redisOpts())
	go sweepUpcoming(client, consultations)
}

// sweepUpcoming periodically enqueues reminder tasks for confirmed
// consultations starting within the reminder lead time. Task IDs are
// keyed by consultation so repeat sweeps do not duplicate reminders.
func sweepUpcoming(client *asynq.Client, consultations consultationRepo.ConsultationRepository) {
	lead := time.Duration(config.AppConfig.ReminderLeadMins) * time.Minute

	for {
		from := time.Now()
		to := from.Add(lead + scanInterval)

		upcoming, err := consultations.ListStartingBetween(from, to)
		if err != nil {
			utils.GetLogger().Warn("Reminder sweep failed", zap.Error(err))
			time.Sleep(scanInterval)
			continue
		}

		for _, c := range upcoming {
			payload, err := json.Marshal(reminderPayload{ConsultationID: c.ID})
			if err != nil {
				continue
			}
			fireAt := c.ScheduledAt.Add(-lead)
			if fireAt.Before(time.Now()) {
				fireAt = time.Now()
			}
			task := asynq.NewTask(TypeConsultationReminder, payload)
			_, err = client.Enqueue(task,
				asynq.ProcessAt(fireAt),
				asynq.TaskID("reminder:"+c.ID),
				asynq.Retention(time.Hour))
			if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
				utils.GetLogger().Warn("Failed to enqueue reminder",
					zap.String("consultationID", c.ID), zap.Error(err))
			}
		}

		time.Sleep(scanInterval)
	}
}

func handleReminderTask(notifSvc notification.NotificationService, consultations consultationRepo.ConsultationRepository, lawyers lawyerRepo.LawyerRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Warn("Invalid reminder payload", zap.Error(err))
			return err
		}

		c, err := consultations.GetByID(p.ConsultationID)
		if err != nil {
			if errors.Is(err, consultationRepo.ErrNotFound) {
				return nil
			}
			return err
		}
		// Cancelled or already held consultations get no reminder.
		if c.Status != models.ConsultationConfirmed {
			return nil
		}

		lw, err := lawyers.GetByID(c.LawyerID)
		if err != nil {
			return err
		}
		if notifSvc == nil || lw.Email == "" {
			return nil
		}

		if err := notifSvc.SendConsultationReminder(lw.Email, c, lw.Name); err != nil {
			utils.GetLogger().Warn("Failed to send reminder email",
				zap.String("consultationID", c.ID), zap.Error(err))
			return err
		}
		utils.GetLogger().Info("Reminder sent", zap.String("consultationID", c.ID))
		return nil
	}
}
