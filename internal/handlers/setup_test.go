package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/taskmates/taskmates-be/internal/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Requester{},
		&models.TaskSeeker{},
		&models.Task{},
		&models.Postulant{},
		&models.Rating{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	Register(app.Group("/api"), gdb)
	return app, gdb
}

func doRaw(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := doRaw(t, app, method, path, body)
	var m map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return status, m
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	u := &models.User{
		Username: username,
		Email:    email,
		Password: "not-a-real-hash",
		FullName: "Test User",
		Role:     models.RoleNone,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRequester(t *testing.T, db *gorm.DB, u *models.User) *models.Requester {
	t.Helper()

	r := &models.Requester{UserID: u.ID}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed requester: %v", err)
	}
	u.Role = models.RoleFor(true, u.Role == models.RoleTaskSeeker || u.Role == models.RoleBoth)
	if err := db.Save(u).Error; err != nil {
		t.Fatalf("seed requester role: %v", err)
	}
	return r
}

func seedSeeker(t *testing.T, db *gorm.DB, u *models.User) *models.TaskSeeker {
	t.Helper()

	s := &models.TaskSeeker{UserID: u.ID}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed seeker: %v", err)
	}
	u.Role = models.RoleFor(u.Role == models.RoleRequester || u.Role == models.RoleBoth, true)
	if err := db.Save(u).Error; err != nil {
		t.Fatalf("seed seeker role: %v", err)
	}
	return s
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	cat := &models.Category{Name: name}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return cat
}

func seedTask(t *testing.T, db *gorm.DB, requester *models.Requester, category *models.Category) *models.Task {
	t.Helper()

	delivery := &models.Address{Address: "1 Delivery Way", Latitude: 40.1, Longitude: -3.7}
	pickup := &models.Address{Address: "2 Pickup Road", Latitude: 40.2, Longitude: -3.8}
	if err := db.Create(delivery).Error; err != nil {
		t.Fatalf("seed delivery address: %v", err)
	}
	if err := db.Create(pickup).Error; err != nil {
		t.Fatalf("seed pickup address: %v", err)
	}

	due, _ := time.Parse(dueDateLayout, "2030-01-02")
	task := &models.Task{
		Title:              "Move a couch",
		Description:        "Third floor, no elevator",
		DeliveryLocationID: delivery.ID,
		PickupLocationID:   pickup.ID,
		DueDate:            datatypes.Date(due),
		RequesterID:        requester.ID,
		CategoryID:         category.ID,
		Budget:             50,
		Status:             models.TaskStatusPending,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
