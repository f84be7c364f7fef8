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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/create_booking"
	getBookedSlotsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_booked_slots"
	getBookingHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
	"github.com/m04kA/PhotoStudio-BookingService/internal/config"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/mailer"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/whatsapp"
	bookingsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings"
	notificationsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications"
	createBookingUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/create_booking"
	getBookedSlotsUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_booked_slots"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/logger"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/metrics"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/txmanager"
)

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

	log.Info("Starting PhotoStudio-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем интеграции
	whatsappBuilder := whatsapp.NewBuilder(cfg.Studio.WhatsAppPhone)
	log.Info("WhatsApp deep-link builder initialized (phone=%s)", cfg.Studio.WhatsAppPhone)

	// Почта отключается пустым smtp.host — уведомления останутся только в WhatsApp
	var mailClient notificationsService.Mailer
	if cfg.SMTP.Host != "" && cfg.Studio.NotifyEmail != "" {
		mailClient = mailer.NewClient(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			cfg.Studio.NotifyEmail,
			log,
		)
		log.Info("Mailer initialized (host=%s, to=%s)", cfg.SMTP.Host, cfg.Studio.NotifyEmail)
	} else {
		log.Warn("Mailer disabled: smtp.host or studio.notify_email is empty")
	}

	notifySvc := notificationsService.NewService(
		mailClient,
		time.Duration(cfg.Notifications.TimeoutSeconds)*time.Second,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		notifySvc,
		whatsappBuilder,
		log,
	)

	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентский funnel, без аутентификации)
	// ============================================================

	// Занятость слотов на дату (?date=YYYY-MM-DD)
	api.HandleFunc("/bookings", getBookedSlots.Handle).
		Methods(http.MethodGet).
		Queries("date", "{date}")

	// Создание бронирования (finalize=false — только проверка и deep-link)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Studio.AdminToken))

	// Список бронирований с фильтрами
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса / подтверждение оплаты
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся фоновых уведомлений
	notifySvc.Wait()

	log.Info("Server stopped gracefully")
}
