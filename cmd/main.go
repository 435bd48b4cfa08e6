package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	changeStatusHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/change_reservation_status"
	createFieldHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/create_field"
	createLocationHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/create_location"
	createPricingHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/create_pricing"
	createReservationHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/create_reservation"
	createVehicleTypeHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/create_vehicle_type"
	deleteFieldHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/delete_field"
	deletePricingHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/delete_pricing"
	deleteReservationHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/delete_reservation"
	exportPDFHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/export_reservation_pdf"
	getQuoteHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/get_quote"
	getReservationHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/get_reservation"
	getServiceHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/get_service"
	healthHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/health"
	listContactMessagesHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/list_contact_messages"
	listLocationsHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/list_locations"
	listPricingHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/list_pricing"
	listPricingConflictsHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/list_pricing_conflicts"
	listReservationsHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/list_services"
	listVehicleTypesHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/list_vehicle_types"
	pushPublicKeyHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/push_public_key"
	pushSendHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/push_send"
	pushSubscribeHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/push_subscribe"
	pushUnsubscribeHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/push_unsubscribe"
	reopenReservationHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/reopen_reservation"
	submitContactHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/submit_contact"
	updateFieldHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/update_field"
	updatePricingHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/update_pricing"
	updateReservationHandler "github.com/m04kA/SMC-TransferService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-TransferService/internal/api/middleware"
	"github.com/m04kA/SMC-TransferService/internal/config"
	"github.com/m04kA/SMC-TransferService/internal/infra/cache/pricecache"
	catalogRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/client"
	contactRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/contact"
	pricingRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/pricing"
	pushSubscriptionRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/pushsubscription"
	reservationRepo "github.com/m04kA/SMC-TransferService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TransferService/internal/integrations/mailer"
	"github.com/m04kA/SMC-TransferService/internal/integrations/pdfrenderer"
	"github.com/m04kA/SMC-TransferService/internal/integrations/webpush"
	catalogService "github.com/m04kA/SMC-TransferService/internal/service/catalog"
	contactsService "github.com/m04kA/SMC-TransferService/internal/service/contacts"
	notificationsService "github.com/m04kA/SMC-TransferService/internal/service/notifications"
	pricingService "github.com/m04kA/SMC-TransferService/internal/service/pricing"
	reservationsService "github.com/m04kA/SMC-TransferService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-TransferService/internal/usecase/create_reservation"
	exportPDFUC "github.com/m04kA/SMC-TransferService/internal/usecase/export_reservation_pdf"
	submitContactUC "github.com/m04kA/SMC-TransferService/internal/usecase/submit_contact"
	"github.com/m04kA/SMC-TransferService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TransferService/pkg/logger"
	"github.com/m04kA/SMC-TransferService/pkg/metrics"
	"github.com/m04kA/SMC-TransferService/pkg/txmanager"
)

// mailSender общий для уведомлений о бронированиях и формы обратной связи
type mailSender interface {
	Send(ctx context.Context, subject, body string) error
}

// redisPinger адаптирует redis клиент к health.Pinger
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TransferService...")

	// Метрики (nil, если выключены: методы *metrics.Metrics безопасны для nil)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.New(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	pricingRepository := pricingRepo.NewRepository(wrappedDB)
	contactRepository := contactRepo.NewRepository(wrappedDB)
	pushSubscriptionRepository := pushSubscriptionRepo.NewRepository(wrappedDB)

	pingers := map[string]healthHandler.Pinger{"database": wrappedDB}

	// Кэш цен: redis, если включен, иначе в памяти процесса
	var priceCache pricingService.PriceCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		priceCache = pricecache.NewRedis(redisClient, cfg.Pricing.CacheTTL())
		pingers["redis"] = redisPinger{client: redisClient}
		log.Info("Price cache: redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Pricing.CacheTTL())
	} else {
		priceCache = pricecache.NewMemory(cfg.Pricing.CacheTTL())
		log.Info("Price cache: in-memory (ttl=%s)", cfg.Pricing.CacheTTL())
	}

	// Интеграции
	pushClient := webpush.NewClient(webpush.Config{
		PublicKey:  cfg.Push.VAPIDPublicKey,
		PrivateKey: cfg.Push.VAPIDPrivateKey,
		Subject:    cfg.Push.Subject,
		TTL:        cfg.Push.TTL,
	}, time.Duration(cfg.Push.Timeout)*time.Second)

	var pushSender notificationsService.PushSender
	if pushClient.Enabled() {
		pushSender = pushClient
		log.Info("Web push enabled")
	} else {
		log.Warn("Web push disabled: VAPID keys are not configured")
	}

	var mail mailSender
	if cfg.Mail.Enabled {
		mail = mailer.New(mailer.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			To:       cfg.Mail.To,
		})
		log.Info("Mail notifications enabled (host=%s, recipients=%d)", cfg.Mail.Host, len(cfg.Mail.To))
	}

	renderer := pdfrenderer.New(cfg.Company.Name)

	// Сервисы
	resolver := pricingService.NewResolver(pricingRepository, metricsCollector, log)
	cachedResolver := pricingService.NewCachedResolver(resolver, priceCache, metricsCollector, log)

	catalogSvc := catalogService.NewService(catalogRepository, txMgr, log)
	pricingSvc := pricingService.NewService(pricingRepository, cachedResolver, cachedResolver, txMgr, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		clientRepository,
		reservationsService.DeletePolicy(cfg.Reservations.DeletePolicy),
		log,
	)
	notificationsSvc := notificationsService.NewService(
		pushSubscriptionRepository,
		pushSender,
		mail,
		metricsCollector,
		cfg.Push.Concurrency,
		log,
	)
	contactsSvc := contactsService.NewService(contactRepository, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		catalogRepository,
		clientRepository,
		reservationRepository,
		cachedResolver,
		notificationsSvc,
		metricsCollector,
		txMgr,
		time.Duration(cfg.Reservations.NotifyTimeout)*time.Second,
		log,
	)
	submitContactUseCase := submitContactUC.NewUseCase(contactRepository, mail, log)
	exportPDFUseCase := exportPDFUC.NewUseCase(
		reservationRepository,
		clientRepository,
		catalogRepository,
		renderer,
		cfg.Company.Currency,
		log,
	)

	// Handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getQuote := getQuoteHandler.NewHandler(pricingSvc, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listLocations := listLocationsHandler.NewHandler(catalogSvc, log)
	listVehicleTypes := listVehicleTypesHandler.NewHandler(catalogSvc, log)
	exportPDF := exportPDFHandler.NewHandler(exportPDFUseCase, log)
	pushSubscribe := pushSubscribeHandler.NewHandler(notificationsSvc, log)
	pushUnsubscribe := pushUnsubscribeHandler.NewHandler(notificationsSvc, log)
	pushPublicKey := pushPublicKeyHandler.NewHandler(pushClient, log)

	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	changeStatus := changeStatusHandler.NewHandler(reservationsSvc, log)
	reopenReservation := reopenReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	listPricing := listPricingHandler.NewHandler(pricingSvc, log)
	createPricing := createPricingHandler.NewHandler(pricingSvc, log)
	updatePricing := updatePricingHandler.NewHandler(pricingSvc, log)
	deletePricing := deletePricingHandler.NewHandler(pricingSvc, log)
	listPricingConflicts := listPricingConflictsHandler.NewHandler(pricingSvc, log)
	createField := createFieldHandler.NewHandler(catalogSvc, log)
	updateField := updateFieldHandler.NewHandler(catalogSvc, log)
	deleteField := deleteFieldHandler.NewHandler(catalogSvc, log)
	createLocation := createLocationHandler.NewHandler(catalogSvc, log)
	createVehicleType := createVehicleTypeHandler.NewHandler(catalogSvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactsSvc, log)
	pushSend := pushSendHandler.NewHandler(notificationsSvc, log)

	health := healthHandler.NewHandler(pingers, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт)
	// ============================================================

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicle-types", listVehicleTypes.Handle).Methods(http.MethodGet)

	api.HandleFunc("/pricing/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}/pdf", exportPDF.Handle).Methods(http.MethodGet)

	// Форма обратной связи ограничена по IP
	contactLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:           contactRate(cfg.Contact.RateLimitPerMinute),
		Burst:          cfg.Contact.RateLimitBurst,
		TrustForwarded: cfg.Contact.TrustForwarded,
	}, log)
	api.Handle("/contact", contactLimiter.Limit(http.HandlerFunc(submitContact.Handle))).Methods(http.MethodPost)

	api.HandleFunc("/push/public-key", pushPublicKey.Handle).Methods(http.MethodGet)
	api.HandleFunc("/push/subscribe", pushSubscribe.Handle).Methods(http.MethodPost)
	api.HandleFunc("/push/unsubscribe", pushUnsubscribe.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminToken(cfg.Admin.Token, log))
	if cfg.Admin.Token == "" {
		log.Warn("Admin token is not configured, admin API will reject every request")
	}

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{reservationId}/status", changeStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{reservationId}/reopen", reopenReservation.Handle).Methods(http.MethodPost)

	// --- Цены ---
	admin.HandleFunc("/pricing", listPricing.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/pricing", createPricing.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/pricing/conflicts", listPricingConflicts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/pricing/{pricingId}", updatePricing.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/pricing/{pricingId}", deletePricing.Handle).Methods(http.MethodDelete)

	// --- Каталог ---
	admin.HandleFunc("/services/{serviceId}/fields", createField.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}/fields/{fieldId}", updateField.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}/fields/{fieldId}", deleteField.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/locations", createLocation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/vehicle-types", createVehicleType.Handle).Methods(http.MethodPost)

	// --- Обращения и рассылки ---
	admin.HandleFunc("/contact-messages", listContactMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/push/send", pushSend.Handle).Methods(http.MethodPost)

	// CORS для сайта и админки
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderAdminToken, middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID, "Content-Disposition"},
		MaxAge:         600,
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся фоновых уведомлений, запущенных последними запросами
	createReservationUseCase.Wait()
	submitContactUseCase.Wait()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}

// contactRate переводит лимит "в минуту" в rate.Limit. 0 выключает ограничение
func contactRate(perMinute int) rate.Limit {
	if perMinute <= 0 {
		return rate.Inf
	}
	return rate.Every(time.Minute / time.Duration(perMinute))
}
