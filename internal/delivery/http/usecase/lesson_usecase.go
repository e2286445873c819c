package usecase

import (
	"context"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/repository"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LessonUsecase interface {
	List(ctx context.Context, level string) ([]entity.LessonSummary, error)
	Get(ctx context.Context, slug string) (*entity.LessonDetail, error)
}

type LessonUsecaseConfig struct {
	DB         *gorm.DB
	Log        *logrus.Logger
	Repository repository.LessonRepository
}

type lessonUsecase struct {
	cfg LessonUsecaseConfig
}

func NewLessonUsecase(cfg LessonUsecaseConfig) LessonUsecase {
	return &lessonUsecase{cfg: cfg}
}

func (u *lessonUsecase) List(_ context.Context, level string) ([]entity.LessonSummary, error) {
	lessons, err := u.cfg.Repository.FindAll(u.cfg.DB, level)
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.LessonSummary, 0, len(lessons))
	for i := range lessons {
		summaries = append(summaries, mapper.ToLessonSummary(&lessons[i]))
	}
	return summaries, nil
}

func (u *lessonUsecase) Get(_ context.Context, slug string) (*entity.LessonDetail, error) {
	lesson, err := u.cfg.Repository.FindBySlug(u.cfg.DB, slug)
	if err != nil {
		return nil, err
	}

	detail := mapper.ToLessonDetail(lesson)
	return &detail, nil
}
