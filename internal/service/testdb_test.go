package service

import (
	"fmt"
	"testing"

	"github.com/lshigami/Lapras/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory SQLite database so every connection from
// the pool sees the same data, and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.University{},
		&model.UserPreferences{},
		&model.Lesson{},
		&model.LessonTracking{},
		&model.Quizlet{},
		&model.Test{},
		&model.TestQuestion{},
		&model.TestResult{},
		&model.QuestionAnswer{},
	))
	return db
}
