package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/globalscholars/study_abroad/configs"
	"github.com/globalscholars/study_abroad/database"
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/globalscholars/study_abroad/jobs"
	"github.com/globalscholars/study_abroad/middleware"
	"github.com/globalscholars/study_abroad/notifications"
	"github.com/globalscholars/study_abroad/payments"
	"github.com/globalscholars/study_abroad/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := configs.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("🔥 Failed to seed catalog: %v", err)
	}

	mailer := notifications.NewEmailService(cfg)
	gateway := payments.NewDemoGateway(cfg.DemoPaymentDelayMs)

	c := cron.New()
	c.AddFunc("*/10 * * * *", jobs.SyncCourseStudentCounts(db))
	c.AddFunc("0 * * * *", jobs.CompleteElapsedConsultations(db))
	c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:      "Study Abroad API",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"message": message,
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	protect := []fiber.Handler{middleware.Protected(cfg.JWTSecret), middleware.ResolveUser(db)}
	optionalUser := middleware.OptionalUser(db, cfg.JWTSecret)

	routes.AuthRoutes(app, handlers.NewAuthHandler(db, cfg.JWTSecret, mailer), protect)
	routes.CourseRoutes(app, handlers.NewCourseHandler(db))
	routes.DestinationRoutes(app, handlers.NewDestinationHandler(db))
	routes.ConsultationRoutes(app, handlers.NewConsultationHandler(db, mailer), optionalUser, protect)
	routes.EnrollmentRoutes(app, handlers.NewEnrollmentHandler(db, gateway, mailer), protect)
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(db), protect)
	routes.DashboardRoutes(app, handlers.NewDashboardHandler(db), protect)
	routes.ApplicationRoutes(app, handlers.NewApplicationHandler(db), protect)
	routes.AdminRoutes(app, handlers.NewAdminHandler(db), protect)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	go func() {
		log.Printf("✅ Server is running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("🔥 Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	c.Stop()
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("✅ Shutdown complete")
}
