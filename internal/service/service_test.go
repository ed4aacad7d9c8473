package service

import (
	"fmt"
	"testing"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A pooled :memory: database is a different database per connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

var testUserSeq int

func createTestUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()

	testUserSeq++
	user := &model.User{
		Email:    fmt.Sprintf("%s%d@example.com", name, testUserSeq),
		Name:     name,
		Password: "not-a-real-hash",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestContent(t *testing.T, db *gorm.DB, authorID string, status model.ContentStatus) *model.Content {
	t.Helper()

	item := &model.Content{
		Title:       "Sourcing Fundamentals",
		Description: "Boolean basics",
		Type:        model.ContentDocument,
		Status:      status,
		AuthorID:    authorID,
		Tags:        "sourcing,basics",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create content: %v", err)
	}
	return item
}

func userPoints(t *testing.T, db *gorm.DB, userID string) int {
	t.Helper()

	var user model.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	return user.Points
}

func ledgerSum(t *testing.T, db *gorm.DB, userID string) int {
	t.Helper()

	var sum int64
	if err := db.Model(&model.PointTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error; err != nil {
		t.Fatalf("sum ledger: %v", err)
	}
	return int(sum)
}
