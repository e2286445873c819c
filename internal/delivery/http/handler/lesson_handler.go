package handler

import (
	"errors"
	"strings"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/domain"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/usecase"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/response"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	LessonHandler interface {
		List(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
	}

	lessonHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.LessonUsecase
	}
)

func NewLessonHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.LessonUsecase) LessonHandler {
	return &lessonHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /lessons?level=beginner|intermediate|advanced
func (h *lessonHandler) List(ctx *fiber.Ctx) error {
	level := strings.ToLower(strings.TrimSpace(ctx.Query("level")))
	switch entity.Level(level) {
	case "", entity.LevelBeginner, entity.LevelIntermediate, entity.LevelAdvanced:
		// ok
	default:
		return response.NewFailed(domain.LESSON_LIST_FAILED, fiber.NewError(fiber.StatusBadRequest, "invalid level"), h.logger).Send(ctx)
	}

	lessons, err := h.usecase.List(ctx.UserContext(), level)
	if err != nil {
		return response.NewFailed(domain.LESSON_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LESSON_LIST_SUCCESS, lessons, fiber.Map{"total": len(lessons)}).Send(ctx)
}

// GET /lessons/:slug
func (h *lessonHandler) Get(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")
	if slug == "" {
		return response.NewFailed(domain.LESSON_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "slug is required"), h.logger).Send(ctx)
	}

	lesson, err := h.usecase.Get(ctx.UserContext(), slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound(domain.LESSON_GET_FAILED).Send(ctx)
		}
		return response.NewFailed(domain.LESSON_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LESSON_GET_SUCCESS, lesson, nil).Send(ctx)
}
