package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/concungshop/shop-admin/internal/config"
	"github.com/concungshop/shop-admin/internal/handlers"
	"github.com/concungshop/shop-admin/internal/logging"
	loggingmw "github.com/concungshop/shop-admin/internal/middleware/logging"
	"github.com/concungshop/shop-admin/internal/mykafka"
	"github.com/concungshop/shop-admin/internal/repo"
	"github.com/concungshop/shop-admin/internal/service"
	httpserver "github.com/concungshop/shop-admin/internal/transport/http"
	"github.com/concungshop/shop-admin/internal/view"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	jwtSecret := []byte(configuration.JWT_SECRET)

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS}, "catalog_events")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("template parse error: %v", err)
	}

	repository := repo.New(db)
	productSvc := &service.ProductService{Repo: repository}
	userSvc := &service.UserService{Repo: repository}
	categorySvc := &service.CategoryService{Repo: repository}
	roleSvc := &service.RoleService{Repo: repository}

	nav := &handlers.NavBuilder{
		Users:      userSvc,
		Products:   productSvc,
		Categories: categorySvc,
		Roles:      roleSvc,
	}

	e := echo.New()
	e.Renderer = renderer
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:    &handlers.AuthHandler{Users: userSvc, JWTSecret: jwtSecret},
		ProductHandler: &handlers.ProductHandler{Svc: productSvc, Categories: categorySvc, Nav: nav, Producer: producer},
		UserHandler:    &handlers.UserHandler{Svc: userSvc, Nav: nav},
		JWTSecret:      jwtSecret,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
