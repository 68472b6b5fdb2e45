package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/muzahidswe/fs17-Backend-project/internal/config"
	"github.com/muzahidswe/fs17-Backend-project/internal/database"
	"github.com/muzahidswe/fs17-Backend-project/internal/handler"
	"github.com/muzahidswe/fs17-Backend-project/internal/logger"
	"github.com/muzahidswe/fs17-Backend-project/internal/mailer"
	"github.com/muzahidswe/fs17-Backend-project/internal/repository"
	"github.com/muzahidswe/fs17-Backend-project/internal/router"
	"github.com/muzahidswe/fs17-Backend-project/internal/service"
	"github.com/muzahidswe/fs17-Backend-project/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(&logger.Config{
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting backend service...")

	ctx := context.Background()

	db, err := database.Connect(ctx, &cfg.Mongo)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close(context.Background())

	if err := db.EnsureIndexes(ctx); err != nil {
		appLog.Fatal(fmt.Sprintf("Index creation failed: %v", err))
	}
	appLog.Info(fmt.Sprintf("Connected to MongoDB (database: %s)", cfg.Mongo.Database))

	userRepo := repository.NewMongoUserRepository(db.Database())
	categoryRepo := repository.NewMongoCategoryRepository(db.Database())
	productRepo := repository.NewMongoProductRepository(db.Database())
	orderRepo := repository.NewMongoOrderRepository(db.Database())

	tokens := token.NewManager(token.Config{
		Secret:          cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	})

	resetMailer := mailer.New(cfg.Mail.APIKey, cfg.Mail.From)

	userService := service.NewUserService(userRepo, tokens, resetMailer, &service.UserServiceConfig{
		BaseURL: cfg.App.BaseURL,
	})
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo)

	var oauthCfg *oauth2.Config
	if cfg.Google.ClientID != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		}
	} else {
		appLog.Warn("GOOGLE_CLIENT_ID not set, federated login disabled")
	}

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.Setup(router.Handlers{
		Users:      handler.NewUserHandler(userService, oauthCfg),
		Categories: handler.NewCategoryHandler(categoryService),
		Products:   handler.NewProductHandler(productService),
		Orders:     handler.NewOrderHandler(orderService),
	}, tokens, userService)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info(fmt.Sprintf("Backend service listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
