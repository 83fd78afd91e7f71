package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/globalscholars/study_abroad/database"
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/globalscholars/study_abroad/middleware"
	"github.com/globalscholars/study_abroad/payments"
	"github.com/globalscholars/study_abroad/routes"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

var dbSeq int64

// newTestApp wires the fiber app the same way cmd/api/main.go does, backed
// by an in-memory sqlite database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{"status": "error", "message": message})
		},
	})

	protect := []fiber.Handler{middleware.Protected(testJWTSecret), middleware.ResolveUser(db)}
	optionalUser := middleware.OptionalUser(db, testJWTSecret)
	gateway := payments.NewDemoGateway(0)

	routes.AuthRoutes(app, handlers.NewAuthHandler(db, testJWTSecret, nil), protect)
	routes.CourseRoutes(app, handlers.NewCourseHandler(db))
	routes.DestinationRoutes(app, handlers.NewDestinationHandler(db))
	routes.ConsultationRoutes(app, handlers.NewConsultationHandler(db, nil), optionalUser, protect)
	routes.EnrollmentRoutes(app, handlers.NewEnrollmentHandler(db, gateway, nil), protect)
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(db), protect)
	routes.DashboardRoutes(app, handlers.NewDashboardHandler(db), protect)
	routes.ApplicationRoutes(app, handlers.NewApplicationHandler(db), protect)
	routes.AdminRoutes(app, handlers.NewAdminHandler(db), protect)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	return app, db
}

// doRequest performs one request against the app and decodes the JSON
// envelope.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && err != io.EOF {
		t.Fatalf("failed to decode response from %s %s: %v", method, path, err)
	}
	return resp.StatusCode, payload
}

func payloadData(t *testing.T, payload map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %v", payload)
	}
	return data
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	code, payload := doRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	if code != http.StatusCreated {
		t.Fatalf("register returned %d: %v", code, payload)
	}
	token, ok := payloadData(t, payload)["token"].(string)
	if !ok || token == "" {
		t.Fatalf("register returned no token: %v", payload)
	}
	return token
}

// createCourse creates a course through the API and returns its id.
func createCourse(t *testing.T, app *fiber.App, title, category string, price float64) string {
	t.Helper()

	code, payload := doRequest(t, app, http.MethodPost, "/api/courses", "", map[string]interface{}{
		"title":    title,
		"category": category,
		"price":    price,
	})
	if code != http.StatusCreated {
		t.Fatalf("create course returned %d: %v", code, payload)
	}
	course := payloadData(t, payload)["course"].(map[string]interface{})
	return course["id"].(string)
}
