package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/in/ws"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgnotify"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var _ pgnotify.Deliverer = (*ws.Hub)(nil)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	metrics     *metrics.Metrics
	hub         *ws.Hub
	redisClient *redis.Client
	sink        *commands.CreateNotificationCommandHandler
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    metrics.New(),
	}
	c.hub = ws.NewHub(logger, c.metrics, c.checkOrigin)
	if configs.RedisAddr != "" {
		c.redisClient = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	}
	c.sink = commands.NewCreateNotificationCommandHandler(
		c.notificationUoWFactory(),
		pgnotify.NewPublisher(gormDB, configs.NotificationChannel),
		logger,
	)
	return c
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// NotificationSink is the single sink shared by every workflow.
func (c *CompositionRoot) NotificationSink() *commands.CreateNotificationCommandHandler {
	return c.sink
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyFarmerCommandHandler() commands.VerifyFarmerCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyFarmerCommandHandler(f, c.sink, c.logger)
}

func (c *CompositionRoot) CreateMarkNotificationAsReadCommandHandler() commands.MarkNotificationAsReadCommandHandler {
	return commands.NewMarkNotificationAsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsAsReadCommandHandler() commands.MarkAllNotificationsAsReadCommandHandler {
	return commands.NewMarkAllNotificationsAsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	return commands.NewPurgeReadNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnreadNotificationCountQueryHandler() queries.GetUnreadNotificationCountQueryHandler {
	return queries.NewGetUnreadNotificationCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationEventsQueryHandler() queries.GetNotificationEventsQueryHandler {
	return queries.NewGetNotificationEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:                 c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus:          c.CreateUpdateOrderStatusCommandHandler(),
		UpdateProduct:              c.CreateUpdateProductCommandHandler(),
		VerifyFarmer:               c.CreateVerifyFarmerCommandHandler(),
		MarkNotificationAsRead:     c.CreateMarkNotificationAsReadCommandHandler(),
		MarkAllNotificationsAsRead: c.CreateMarkAllNotificationsAsReadCommandHandler(),
		DeleteNotification:         c.CreateDeleteNotificationCommandHandler(),
		ListOrders:                 c.CreateListOrdersQueryHandler(),
		GetOrder:                   c.CreateGetOrderQueryHandler(),
		ListNotifications:          c.CreateListNotificationsQueryHandler(),
		GetUnreadNotificationCount: c.CreateGetUnreadNotificationCountQueryHandler(),
		GetNotificationEvents:      c.CreateGetNotificationEventsQueryHandler(),
	}, c.metrics, c.logger)
}

// CreateRouter builds the HTTP surface. Rate limiting is enabled only when Redis
// is configured.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	var limiter *httpadapter.RateLimiter
	if c.redisClient != nil {
		limiter = httpadapter.NewRateLimiter(c.redisClient,
			c.configs.RateLimitRequests, c.configs.RateLimitWindow, c.logger)
	}

	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:         c.CreateServer(),
		Authenticator:  httpadapter.NewAuthenticator(c.configs.JWTSecret),
		RateLimiter:    limiter,
		Hub:            c.hub,
		Metrics:        c.metrics,
		Health:         c.ping,
		AllowedOrigins: c.configs.AllowedOrigins,
		Logger:         c.logger,
	})
}

func (c *CompositionRoot) CreateNotificationListener() *pgnotify.Listener {
	return pgnotify.NewListener(c.configs.DSN(), c.configs.NotificationChannel, c.hub, c.logger)
}

// CreateJobManager returns the scheduled jobs; retention is skipped when disabled.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.configs.NotificationRetention > 0 {
		scheduled = append(scheduled, jobs.NewNotificationRetentionJob(
			c.CreatePurgeReadNotificationsCommandHandler(),
			c.configs.NotificationPurgeSchedule,
			c.configs.NotificationRetention,
			c.logger,
		))
	}
	return jobs.NewJobManager(scheduled...)
}

// Close releases the connections the root opened.
func (c *CompositionRoot) Close() {
	c.hub.Close()
	if c.redisClient != nil {
		_ = c.redisClient.Close()
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// checkOrigin mirrors the CORS policy for WebSocket upgrades.
func (c *CompositionRoot) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(c.configs.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(c.configs.AllowedOrigins, origin) || slices.Contains(c.configs.AllowedOrigins, "*")
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
