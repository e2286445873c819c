package repository

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
	"gorm.io/gorm"
)

type (
	ProgressRepository interface {
		CreateAttempt(db *gorm.DB, attempt *entity.QuizAttempt) error
		FindAttemptsByUserID(db *gorm.DB, userID string) ([]entity.QuizAttempt, error)
		FindRecentAttemptsByUserID(db *gorm.DB, userID string, limit int) ([]entity.QuizAttempt, error)
		CountPassedLessons(db *gorm.DB, userID string) (int64, error)
	}

	progressRepository struct {
		db *gorm.DB
	}
)

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) CreateAttempt(db *gorm.DB, attempt *entity.QuizAttempt) error {
	if db == nil {
		db = r.db
	}
	return db.Create(attempt).Error
}

func (r *progressRepository) FindAttemptsByUserID(db *gorm.DB, userID string) ([]entity.QuizAttempt, error) {
	if db == nil {
		db = r.db
	}
	var attempts []entity.QuizAttempt
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *progressRepository) FindRecentAttemptsByUserID(db *gorm.DB, userID string, limit int) ([]entity.QuizAttempt, error) {
	if db == nil {
		db = r.db
	}
	var attempts []entity.QuizAttempt
	query := db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&attempts).Error
	return attempts, err
}

// CountPassedLessons counts distinct lessons the user has passed at least once.
func (r *progressRepository) CountPassedLessons(db *gorm.DB, userID string) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.QuizAttempt{}).
		Where("user_id = ? AND passed = ?", userID, true).
		Distinct("lesson_id").
		Count(&count).Error
	return count, err
}
