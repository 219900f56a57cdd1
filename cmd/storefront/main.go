package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/maison-lumiere/storefront/internal/booking"
	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/config"
	"github.com/maison-lumiere/storefront/internal/events"
	"github.com/maison-lumiere/storefront/internal/notify"
	"github.com/maison-lumiere/storefront/internal/showroom"
	"github.com/maison-lumiere/storefront/internal/telemetry"
	"github.com/maison-lumiere/storefront/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := web.NewLogger(cfg.ServiceName)

	ctx, stop := web.SignalContext()
	defer stop()

	otelShutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv(cfg.ServiceName))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer func() { _ = publisher.Close() }()

	var emailSender notify.EmailSender
	if cfg.SMTPHost != "" {
		emailSender = notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	}
	var smsSender notify.SMSSender
	if cfg.SMSWebhookURL != "" {
		smsSender = notify.NewWebhookSMSSender(cfg.SMSWebhookURL, cfg.SMSWebhookToken)
	}
	notifier := notify.New(emailSender, smsSender, logger)

	cat := catalog.Default()
	directory := showroom.Default()
	pricing := booking.PricingConfig{RecurringDiscountPercent: cfg.RecurringDiscountPercent}
	registry := booking.NewRegistry()

	var sessions booking.SessionStore
	if rdb != nil {
		sessions = booking.NewRedisSessionStore(rdb, cfg.SessionTTL)
		logger.Info("wizard sessions in redis", "addr", cfg.RedisAddr, "ttl", cfg.SessionTTL)
	} else {
		sessions = booking.NewMemorySessionStore(cfg.SessionTTL)
		logger.Info("wizard sessions in memory", "ttl", cfg.SessionTTL)
	}

	catalogHandler := catalog.NewHandler(cat)
	showroomHandler := showroom.NewHandler(directory)
	contactHandler := showroom.NewContactHandler(directory, publisher, logger)
	bookingHandler := booking.NewHandler(cat, directory, pricing, booking.GridChecker{}, registry, publisher, notifier, logger)
	wizardHandler := booking.NewWizardHandler(bookingHandler, sessions, logger)

	var checks []web.ReadyCheck
	if cfg.KafkaBrokers != "" {
		checks = append(checks, web.ReadyCheck{Name: "kafka", Check: events.ReadyCheck(cfg.KafkaBrokers)})
	}
	if rdb != nil {
		checks = append(checks, web.ReadyCheck{Name: "redis", Check: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	mux := web.NewMux(checks...)
	mux.HandleFunc("/api/v1/catalog/products", catalogHandler.Products)
	mux.HandleFunc("/api/v1/catalog/consultations", catalogHandler.Consultations)
	mux.HandleFunc("/api/v1/showrooms", showroomHandler.List)
	mux.HandleFunc("/api/v1/public/contact", contactHandler.Submit)
	mux.HandleFunc("/api/v1/public/slots", bookingHandler.Slots)
	mux.HandleFunc("/api/v1/public/book", bookingHandler.Book)
	mux.HandleFunc("/api/v1/public/bookings", bookingHandler.Lookup)
	mux.HandleFunc("/api/v1/public/bookings/cancel", bookingHandler.Cancel)
	mux.HandleFunc("/api/v1/public/wizard", wizardHandler.Create)
	mux.HandleFunc("/api/v1/public/wizard/state", wizardHandler.Get)
	mux.HandleFunc("/api/v1/public/wizard/fields", wizardHandler.Fields)
	mux.HandleFunc("/api/v1/public/wizard/next", wizardHandler.Next)
	mux.HandleFunc("/api/v1/public/wizard/previous", wizardHandler.Previous)
	mux.HandleFunc("/api/v1/public/wizard/reset", wizardHandler.Reset)
	mux.HandleFunc("/api/v1/public/wizard/submit", wizardHandler.Submit)

	var rateLimitMW web.Middleware
	if rdb != nil {
		rl := web.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "rl")
		rateLimitMW = rl.Middleware(logger, cfg.RateLimitFailOpen)
		logger.Info("rate limiting enabled (redis)", "per_minute", cfg.RateLimitPerMinute)
	} else {
		rl := web.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
		logger.Info("rate limiting enabled (in-memory)", "per_minute", cfg.RateLimitPerMinute)
	}

	handler := web.Wrap(mux,
		web.WithCORS(web.CORSPolicy{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   cfg.CORSAllowedMethods,
			AllowedHeaders:   cfg.CORSAllowedHeaders,
			AllowCredentials: cfg.CORSAllowCredentials,
			MaxAge:           cfg.CORSMaxAge,
		}),
		web.WithRequestID,
		web.WithAccessLog(logger),
		web.WithBodyLimit(cfg.RequestBodyLimitBytes),
		web.WithTimeout(cfg.RequestTimeout),
		rateLimitMW,
	)
	wrapped := otelhttp.NewHandler(handler, "storefront")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
