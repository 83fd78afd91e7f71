package database

import (
	"testing"

	"github.com/globalscholars/study_abroad/configs"
	"github.com/globalscholars/study_abroad/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
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

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := SeedCatalog(db); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := SeedCatalog(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var courses int64
	db.Model(&models.Course{}).Count(&courses)
	if courses != int64(len(seedCourses)) {
		t.Errorf("expected %d courses after reseeding, got %d", len(seedCourses), courses)
	}

	var destinations int64
	db.Model(&models.Destination{}).Count(&destinations)
	if destinations != int64(len(seedDestinations)) {
		t.Errorf("expected %d destinations after reseeding, got %d", len(seedDestinations), destinations)
	}

	// Every university must reference its destination.
	var universities []models.University
	if err := db.Find(&universities).Error; err != nil {
		t.Fatalf("failed to load universities: %v", err)
	}
	if len(universities) == 0 {
		t.Fatal("expected seeded universities")
	}
	for _, u := range universities {
		var count int64
		db.Model(&models.Destination{}).Where("id = ?", u.DestinationID).Count(&count)
		if count != 1 {
			t.Errorf("university %s references missing destination %s", u.Name, u.DestinationID)
		}
	}
}

func TestSeedAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := configs.Config{AdminName: "Platform Admin", AdminEmail: "admin@example.com", AdminPassword: "admin-secret"}

	if err := SeedAdmin(db, cfg); err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	if err := SeedAdmin(db, cfg); err != nil {
		t.Fatalf("second seed admin failed: %v", err)
	}

	var admins []models.User
	if err := db.Where("email = ?", cfg.AdminEmail).Find(&admins).Error; err != nil {
		t.Fatalf("failed to load admin: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("expected exactly 1 admin, got %d", len(admins))
	}
	if admins[0].Role != models.RoleAdmin {
		t.Errorf("expected ADMIN role, got %s", admins[0].Role)
	}
	if admins[0].Password == cfg.AdminPassword {
		t.Error("admin password must be stored hashed")
	}
}

func TestSeedAdminSkippedWithoutCredentials(t *testing.T) {
	db := newTestDB(t)

	if err := SeedAdmin(db, configs.Config{}); err != nil {
		t.Fatalf("seed admin without credentials should be a no-op, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no users, got %d", count)
	}
}
