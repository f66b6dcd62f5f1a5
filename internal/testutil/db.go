// Package testutil provides an in-memory SQLite database with the gradebook
// schema for tests that exercise the gorm repositories.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lshigami/gradebook/internal/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory database and migrates every model.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps the in-memory database alive and avoids
	// shared-cache table locks between transactions
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.Student{}, &model.Subject{}, &model.Mark{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func SeedStudent(t testing.TB, db *gorm.DB, id, name, email string) model.Student {
	t.Helper()
	student := model.Student{ID: id, Name: name, Email: email}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student %s: %v", id, err)
	}
	return student
}

func SeedSubject(t testing.TB, db *gorm.DB, id, name string) model.Subject {
	t.Helper()
	subject := model.Subject{ID: id, SubjectName: name}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject %s: %v", id, err)
	}
	return subject
}
