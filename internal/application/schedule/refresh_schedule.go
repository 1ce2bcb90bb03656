package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-api/internal/domain/usecase/forecast"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
)

// RefreshSchedulerConfig holds configuration for the cache refresh scheduler
type RefreshSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// RefreshScheduler periodically re-enqueues every cached city for refresh.
// A distributed lock guarantees a single active scheduler across instances.
type RefreshScheduler struct {
	cron        *cron.Cron
	useCase     forecast.UseCase
	redisClient *redis.Client
	config      *RefreshSchedulerConfig
}

// NewRefreshScheduler creates a new cache refresh scheduler with distributed locking support
func NewRefreshScheduler(useCase forecast.UseCase, redisClient *redis.Client, config *RefreshSchedulerConfig) *RefreshScheduler {
	return &RefreshScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitRefreshScheduleTasks initializes the refresh schedule with distributed locking
func (s *RefreshScheduler) InitRefreshScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"weather_cache_refresh_scheduler",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"weather_schedules",
		)

		err := lock.Lock(ctx)
		if err != nil {
			log.Errorf("Failed to acquire distributed lock, refresh scheduler will not be initialized: %v", err)
			return
		}

		refreshErrChan := lock.AutoRefresh(ctx)

		_, err = s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask)
		if err != nil {
			log.Errorf("Failed to initialize refresh scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Cache refresh scheduler started successfully with cron expression: %s", s.config.CronExpression)

		// Blocks until auto-refresh fails or the context is cancelled.
		err = <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Cache refresh scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Cache refresh scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask enqueues all cached cities for refresh
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("weather.refresh.start", requestID), zap.String("request_id", requestID))

	if err := s.useCase.EnqueueAllCachedCities(requestID); err != nil {
		log.Error("Failed to enqueue cached cities for refresh", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("weather.refresh.done", requestID), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *RefreshScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *RefreshScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
