package database

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Lesson{},
		&entity.VocabularyItem{},
		&entity.Phrase{},
		&entity.DialogueTurn{},
		&entity.QuizAttempt{},
	)
	return err
}
