package repository

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
	"gorm.io/gorm"
)

type (
	LessonRepository interface {
		FindAll(db *gorm.DB, level string) ([]entity.Lesson, error)
		FindAllWithContent(db *gorm.DB) ([]entity.Lesson, error)
		FindBySlug(db *gorm.DB, slug string) (*entity.Lesson, error)
	}

	lessonRepository struct {
		db *gorm.DB
	}
)

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) FindAll(db *gorm.DB, level string) ([]entity.Lesson, error) {
	if db == nil {
		db = r.db
	}
	var lessons []entity.Lesson
	query := db.Preload("Vocabulary", orderByPosition).Preload("Phrases", orderByPosition)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	err := query.Order("id ASC").Find(&lessons).Error
	return lessons, err
}

// FindAllWithContent loads the full catalog including dialogue, as consumed
// by the quiz generator for distractor sourcing.
func (r *lessonRepository) FindAllWithContent(db *gorm.DB) ([]entity.Lesson, error) {
	if db == nil {
		db = r.db
	}
	var lessons []entity.Lesson
	err := db.
		Preload("Vocabulary", orderByPosition).
		Preload("Phrases", orderByPosition).
		Preload("Dialogue", orderByPosition).
		Order("id ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepository) FindBySlug(db *gorm.DB, slug string) (*entity.Lesson, error) {
	if db == nil {
		db = r.db
	}
	var lesson entity.Lesson
	err := db.
		Preload("Vocabulary", orderByPosition).
		Preload("Phrases", orderByPosition).
		Preload("Dialogue", orderByPosition).
		Where("slug = ?", slug).
		First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
