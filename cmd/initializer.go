package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"shopBack/internal/handlers"
	"shopBack/internal/repositories"
	"shopBack/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	orderHandler     *handlers.OrderHandler
	userCheckHandler *handlers.UserCheckHandler
	productHandler   *handlers.ProductHandler
	reportHandler    *handlers.ReportHandler

	jwtSecret []byte
}

func initializeApp(db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) *application {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		errorLog.Fatal("JWT_SECRET is not set")
	}

	// Repositories
	orderRepo := repositories.OrderRepository{DB: db}
	productRepo := repositories.ProductRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	reportRepo := repositories.ReportRepository{DB: db}

	var cache *repositories.DashboardCache
	if rdb != nil {
		cache = &repositories.DashboardCache{RDB: rdb, TTL: time.Minute}
	}

	// Services
	notifications := &services.NotificationService{
		Client: newMessagingClient(infoLog),
		Users:  &userRepo,
	}
	orderService := &services.OrderService{Orders: &orderRepo, Notifications: notifications}
	productService := &services.ProductService{ProductRepo: &productRepo}
	userCheckService := &services.UserCheckService{Users: &userRepo}
	reportService := &services.ReportService{Reports: &reportRepo, Cache: cache}

	// Handlers
	auth := &handlers.Authenticator{Secret: secret}
	orderHandler := &handlers.OrderHandler{Service: orderService, Auth: auth}
	userCheckHandler := &handlers.UserCheckHandler{Service: userCheckService}
	productHandler := &handlers.ProductHandler{Service: productService}
	reportHandler := &handlers.ReportHandler{Service: reportService}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		db:               db,
		orderHandler:     orderHandler,
		userCheckHandler: userCheckHandler,
		productHandler:   productHandler,
		reportHandler:    reportHandler,
		jwtSecret:        secret,
	}
}

// newMessagingClient sets up FCM when credentials are configured; pushes are
// simply disabled otherwise.
func newMessagingClient(infoLog *log.Logger) *messaging.Client {
	credsPath := os.Getenv("FIREBASE_CREDENTIALS")
	if credsPath == "" {
		infoLog.Println("FIREBASE_CREDENTIALS not set, order push notifications disabled")
		return nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credsPath))
	if err != nil {
		infoLog.Printf("firebase init failed, pushes disabled: %v", err)
		return nil
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		infoLog.Printf("firebase messaging init failed, pushes disabled: %v", err)
		return nil
	}
	return client
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
