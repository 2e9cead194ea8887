package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/lshigami/Lapras/config"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResetService rebuilds the schema from scratch and replays the seed script
// if one is configured. Destructive, intended for staging environments.
type ResetService interface {
	Reset() error
}

type resetService struct {
	db       *gorm.DB
	seedFile string
}

func NewResetService(db *gorm.DB, cfg *config.Config) ResetService {
	return &resetService{db: db, seedFile: cfg.SeedFile}
}

func (s *resetService) Reset() error {
	// Children before parents so FK constraints never block the drop.
	tables := []interface{}{
		&model.QuestionAnswer{},
		&model.TestResult{},
		&model.TestQuestion{},
		&model.Test{},
		&model.Quizlet{},
		&model.LessonTracking{},
		&model.Lesson{},
		&model.UserPreferences{},
		&model.University{},
		&model.User{},
	}
	if err := s.db.Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := s.db.AutoMigrate(
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
	); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}

	if s.seedFile == "" {
		return nil
	}
	script, err := os.ReadFile(s.seedFile)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("file", s.seedFile).Msg("Seed script not found, skipping")
			return nil
		}
		return err
	}
	// One Exec per statement: the postgres driver rejects multi-statement
	// queries, and a single bad row should not abort the rest of the seed.
	for _, stmt := range splitStatements(string(script)) {
		if err := s.db.Exec(stmt).Error; err != nil {
			log.Warn().Err(err).Str("statement", stmt).Msg("Seed statement failed, continuing")
		}
	}
	log.Info().Str("file", s.seedFile).Msg("Database reset and reseeded")
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, chunk := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		if stmt := strings.TrimSpace(strings.Join(lines, "\n")); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
