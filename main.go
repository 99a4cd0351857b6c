// Package main bike rental API.
//
// @title           Bike Rental API
// @version         1.0
// @description     bike rental service (fleet, rentals, pricing, reports).
// @contact.name    Mohit Sharma
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Mohit-0987/Bike-Rental-System/app/echoServer"
	authctrl "github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/auth"
	bikectrl "github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/bike"
	rentalctrl "github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/rental"
	reportctrl "github.com/Mohit-0987/Bike-Rental-System/app/echoServer/controller/report"
	"github.com/Mohit-0987/Bike-Rental-System/app/echoServer/validation"
	"github.com/Mohit-0987/Bike-Rental-System/config"
	bikerepo "github.com/Mohit-0987/Bike-Rental-System/repository/bike"
	customerrepo "github.com/Mohit-0987/Bike-Rental-System/repository/customer"
	rentalrepo "github.com/Mohit-0987/Bike-Rental-System/repository/rental"
	reportrepo "github.com/Mohit-0987/Bike-Rental-System/repository/report"
	authsvc "github.com/Mohit-0987/Bike-Rental-System/service/auth"
	bikesvc "github.com/Mohit-0987/Bike-Rental-System/service/bike"
	rentalsvc "github.com/Mohit-0987/Bike-Rental-System/service/rental"
	reportsvc "github.com/Mohit-0987/Bike-Rental-System/service/report"
	"github.com/Mohit-0987/Bike-Rental-System/util/cache"
	"github.com/Mohit-0987/Bike-Rental-System/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.SchemaPath != "" {
		if err := database.ApplySchema(ctx, db.SQL, cfg.SchemaPath); err != nil {
			log.Error("schema apply failed", "err", err)
			os.Exit(1)
		}
	}

	// redis (report cache)
	rdb := cache.New(cfg.RedisAddr)

	// repos
	cr := customerrepo.New(db.SQL)
	br := bikerepo.New(db.SQL)
	rr := rentalrepo.New(db.SQL)
	pr := reportrepo.New(db.SQL)

	// services
	as := authsvc.New(cr, cfg.JWTSecret)
	bs := bikesvc.New(br)
	rs := rentalsvc.New(db.SQL, rr)
	reps := reportsvc.New(pr, cache.NewRedis(rdb), time.Duration(cfg.ReportCacheTTL)*time.Second, log)

	if cfg.SeedSampleBikes {
		n, err := bs.SeedSampleData(ctx)
		if err != nil {
			log.Error("seed failed", "err", err)
			os.Exit(1)
		}
		if n > 0 {
			log.Info("seeded sample fleet", "bikes", n)
		}
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bikeC := &bikectrl.Controller{Svc: bs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	reportC := &reportctrl.Controller{Svc: reps, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e, log)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Bike:   bikeC,
		Rental: rentalC,
		Report: reportC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
