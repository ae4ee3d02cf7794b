package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "go-monitor/configs"
	_ "go-monitor/docs"
	"go-monitor/internal/application/alert"
	"go-monitor/internal/application/controller"
	"go-monitor/internal/application/middleware"
	"go-monitor/internal/application/schedule"
	"go-monitor/internal/domain/event"
	"go-monitor/internal/domain/gateway/api"
	"go-monitor/internal/domain/gateway/cache"
	"go-monitor/internal/domain/gateway/db"
	"go-monitor/internal/domain/gateway/fs"
	"go-monitor/internal/domain/gateway/queue"
	"go-monitor/internal/domain/gateway/self"
	"go-monitor/internal/domain/metrics"
	"go-monitor/internal/domain/model"
	"go-monitor/internal/domain/monitor"
	"go-monitor/internal/domain/usecase/health"
	metricsusecase "go-monitor/internal/domain/usecase/metrics"
	"go-monitor/internal/infra/aws"
	gormdb "go-monitor/internal/infra/database/gorm"
	"go-monitor/internal/infra/database/replica"
	httpclient "go-monitor/pkg/http"
	"go-monitor/pkg/log"
	"go-monitor/pkg/msg"
	"go-monitor/pkg/redis"
	"go-monitor/pkg/resource"
)

// @title Go Monitor
// @version 1.0
// @description Runtime health check and performance metrics service
// @BasePath /go-monitor
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init event bus, metrics collector and resource sampler
	bus := event.NewBus(resource.GetInt("app.monitor.event-buffer"))
	bus.Start()

	collector := metrics.NewCollector(metrics.NewCollectorConfig().
		WithWindowCapacity(resource.GetInt("app.metrics.window-capacity")).
		WithSlowRequestThreshold(resource.GetDuration("app.metrics.slow-request-threshold")).
		WithSlowQueryThreshold(resource.GetDuration("app.metrics.slow-query-threshold")).
		WithSlowQueryLimit(resource.GetInt("app.metrics.slow-query-limit")).
		WithQueryTextLimit(resource.GetInt("app.metrics.query-text-limit")).
		WithTopEndpoints(resource.GetInt("app.metrics.top-endpoints")), bus)

	sampler := metrics.NewResourceSampler(metrics.NewSamplerConfig().
		WithMemoryAlertPercent(resource.GetFloat64("app.metrics.sample.memory-alert-percent")).
		WithCPUAlertPercent(resource.GetFloat64("app.metrics.sample.cpu-alert-percent")).
		WithSchedulerDelayInterval(resource.GetDuration("app.metrics.sample.scheduler-delay-interval")).
		WithSchedulerDelayWarn(resource.GetDuration("app.metrics.sample.scheduler-delay-warn")).
		WithGCPauseWarn(resource.GetDuration("app.metrics.sample.gc-pause-warn")).
		WithGCStats(resource.GetBool("app.metrics.sample.gc-stats")).
		WithSchedulerDelay(resource.GetBool("app.metrics.sample.scheduler-delay")), collector, bus)

	// Init monitor
	monitorConfig := monitor.NewMonitorConfig().
		WithRegularInterval(resource.GetDuration("app.monitor.regular-interval")).
		WithCriticalInterval(resource.GetDuration("app.monitor.critical-interval")).
		WithDefaultTimeout(resource.GetDuration("app.monitor.default-timeout")).
		WithDefaultRetries(resource.GetInt("app.monitor.default-retries")).
		WithDegradedLatency(resource.GetDuration("app.monitor.degraded-latency")).
		WithUnhealthyLatency(resource.GetDuration("app.monitor.unhealthy-latency")).
		WithRetryBackoffStep(resource.GetDuration("app.monitor.retry-backoff-step")).
		WithVersion(resource.GetString("app.monitor.version")).
		WithEnvironment(resource.GetString("app.monitor.environment"))
	if err := monitorConfig.Validate(); err != nil {
		log.Fatalf("Invalid monitor configuration: %v", err)
	}

	// Init infra clients
	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))
	sqsClient := aws.NewSqsClient()

	// Init alert notifier
	notifier := alert.NewNotifier(alert.NewNotifierConfig().
		WithCooldown(resource.GetDuration("app.metrics.alert.cooldown")).
		WithBurst(resource.GetInt("app.metrics.alert.burst")))
	if alertQueue := resource.GetString("app.metrics.alert.queue-name"); alertQueue != "" {
		notifier.WithQueueForwarding(aws.NewSQSSenderAdapter(sqsClient), alertQueue)
	}
	bus.Subscribe(notifier)

	registry := monitor.NewRegistry()
	registerDependencies(registry, collector, redisClient, sqsClient)

	mon := monitor.NewMonitor(monitorConfig, registry, collector, bus)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(mon)
	metricsUseCase := metricsusecase.NewMetricsUseCase(collector, sampler)

	// Init server
	e := echo.New()
	middleware.SetupRequestLogger(e)
	middleware.SetupRequestMetrics(e, collector)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	metricsController := controller.NewMetricsController(apiGroup, metricsUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	metricsController.InitMetricsRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	healthScheduler, err := schedule.NewHealthScheduler(mon, &schedule.HealthSchedulerConfig{
		RegularInterval:  monitorConfig.RegularInterval,
		CriticalInterval: monitorConfig.CriticalInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create health scheduler: %v", err)
	}
	if err = healthScheduler.InitHealthScheduleTasks(); err != nil {
		log.Fatalf("Failed to start health scheduler: %v", err)
	}

	resourceScheduler := schedule.NewResourceScheduler(sampler, resource.GetString("app.metrics.sample.cron"))
	resourceScheduler.InitResourceScheduleTasks()

	// Start server
	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped unexpectedly: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started"))

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down go-monitor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	healthScheduler.Stop()
	resourceScheduler.Stop()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Failed to shut down server gracefully: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Errorf("Failed to close redis client: %v", err)
	}
	bus.Stop()
}

// registerDependencies builds the probe gateways and registers every
// dependency described in the application properties.
func registerDependencies(registry *monitor.Registry, collector *metrics.Collector, redisClient *redis.Client, sqsClient *awssqs.Client) {
	mustRegister(registry, monitor.NewDependency("database", model.TypeDatabase, db.NewGormProbeGateway(gormdb.Db)).
		WithCritical(resource.GetBool("app.monitor.dependencies.database.critical")).
		WithEnabled(resource.GetBool("app.monitor.dependencies.database.enabled")))

	mustRegister(registry, monitor.NewDependency("database-replica", model.TypeDatabase, db.NewReplicaProbeGateway(replica.Db, collector)).
		WithCritical(resource.GetBool("app.monitor.dependencies.database-replica.critical")).
		WithEnabled(resource.GetBool("app.monitor.dependencies.database-replica.enabled")))

	mustRegister(registry, monitor.NewDependency("redis", model.TypeCache, cache.NewRedisProbeGateway(redisClient, collector)).
		WithCritical(resource.GetBool("app.monitor.dependencies.redis.critical")).
		WithEnabled(resource.GetBool("app.monitor.dependencies.redis.enabled")))

	queueProbe := queue.NewSQSProbeGateway(sqsClient,
		resource.GetString("app.monitor.dependencies.queue.name"),
		resource.GetInt("app.monitor.dependencies.queue.backlog-threshold"))
	mustRegister(registry, monitor.NewDependency("queue", model.TypeService, queueProbe).
		WithCritical(resource.GetBool("app.monitor.dependencies.queue.critical")).
		WithEnabled(resource.GetBool("app.monitor.dependencies.queue.enabled")))

	externalTimeout := resource.GetDuration("app.monitor.dependencies.external-api.timeout")
	externalProbe := api.NewHTTPProbeGateway("external-api",
		resource.GetString("app.monitor.dependencies.external-api.base-url"),
		resource.GetString("app.monitor.dependencies.external-api.status-path"),
		httpclient.ClientOptions{ConnectionTimeout: externalTimeout, ReadTimeout: externalTimeout},
		collector)
	mustRegister(registry, monitor.NewDependency("external-api", model.TypeExternalAPI, externalProbe).
		WithCritical(resource.GetBool("app.monitor.dependencies.external-api.critical")).
		WithEnabled(resource.GetBool("app.monitor.dependencies.external-api.enabled")).
		WithTimeout(externalTimeout))

	mustRegister(registry, monitor.NewDependency("filesystem", model.TypeFileSystem, fs.NewFileProbeGateway(resource.GetString("app.monitor.dependencies.filesystem.dir"))).
		WithCritical(resource.GetBool("app.monitor.dependencies.filesystem.critical")).
		WithEnabled(resource.GetBool("app.monitor.dependencies.filesystem.enabled")))

	mustRegister(registry, monitor.NewDependency("self", model.TypeService, self.NewSelfProbeGateway(collector, 90, 0.5)).
		WithCritical(resource.GetBool("app.monitor.dependencies.self.critical")).
		WithEnabled(resource.GetBool("app.monitor.dependencies.self.enabled")))
}

func mustRegister(registry *monitor.Registry, dependency *monitor.Dependency) {
	if err := registry.Register(dependency); err != nil {
		log.Fatalf("Failed to register dependency: %v", err)
	}
}
