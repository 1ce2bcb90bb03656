package main

import (
	"context"

	"github.com/labstack/echo/v4"

	_ "weather-api/configs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	"weather-api/internal/application/processor"
	"weather-api/internal/application/schedule"
	"weather-api/internal/application/state"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/cache"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/usecase/auth"
	"weather-api/internal/domain/usecase/forecast"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/infra/aws"
	"weather-api/internal/infra/database/gorm"
	httpclient "weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
	"weather-api/pkg/resource"
	"weather-api/pkg/sqs"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))

	sqsClient := aws.NewSqsClient()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.api-key"),
		resource.GetString("app.weather.units"),
		httpclient.ClientOptions{
			ReadTimeout: resource.GetDuration("app.weather.timeout"),
			Logger:      httpclient.NewZapHTTPLogger(),
		})
	authGateway := api.NewAuthGateway(
		resource.GetString("app.auth.base-url"),
		resource.GetString("app.auth.api-key"),
		httpclient.ClientOptions{
			ReadTimeout: resource.GetDuration("app.auth.timeout"),
		})
	locationGateway := api.NewLocationGateway(
		resource.GetString("app.location.base-url"),
		httpclient.ClientOptions{
			ReadTimeout: resource.GetDuration("app.location.timeout"),
		})
	cacheGateway := db.NewGormWeatherCacheGateway(gorm.Db)
	dbHealthGateway := db.NewGormHealthDBGateway(gorm.Db)
	redisHealthGateway := cache.NewRedisHealthGateway(redisClient)

	// Init UseCases
	queueName := resource.GetString("app.refresh.queue")
	forecastUseCase := forecast.NewForecastUseCase(
		resource.GetInt("app.weather.search-limit"),
		queueName,
		resource.GetInt("app.refresh.batch-size"),
		weatherGateway,
		cacheGateway,
		queueSender,
	)
	authUseCase := auth.NewAuthUseCase(authGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, redisHealthGateway)

	// Init State Controllers
	weatherState := state.NewWeatherState(forecastUseCase, locationGateway,
		resource.GetString("app.weather.default-city"))
	authState := state.NewAuthState(authUseCase)

	// Init Controllers
	loginRateLimiter := redis.NewRateLimiter(redisClient, redis.NewRateLimiterOptions().
		WithLimit(resource.GetInt64("app.ratelimit.login-limit")).
		WithWindow(resource.GetDuration("app.ratelimit.login-window")).
		WithNamespace("auth"))

	weatherController := controller.NewWeatherController(apiGroup, weatherState)
	authController := controller.NewAuthController(apiGroup, authState, middleware.RateLimitByIP(loginRateLimiter))
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	authController.InitAuthRoutes()
	healthController.InitHealthRoutes()

	// Init Worker
	refreshProcessor := processor.NewRefreshProcessor(forecastUseCase)
	refreshWorker, err := sqs.NewWorker(ctx, sqsClient, queueName, refreshProcessor, &sqs.WorkerConfig{
		PoolSize: resource.GetInt("app.refresh.worker-pool-size"),
		LogLevel: sqs.ErrorLevel,
	})
	if err != nil {
		log.Errorf("Failed to start refresh worker, cache refresh disabled: %v", err)
	} else {
		go refreshWorker.Start(ctx)
	}

	// Init Schedule
	refreshScheduler := schedule.NewRefreshScheduler(forecastUseCase, redisClient, &schedule.RefreshSchedulerConfig{
		CronExpression:  resource.GetString("app.refresh.cron"),
		LockTTL:         resource.GetDuration("app.refresh.lock-ttl"),
		RefreshInterval: resource.GetDuration("app.refresh.lock-refresh-interval"),
	})
	refreshScheduler.InitRefreshScheduleTasks(ctx)

	// Start Routes
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
