package handler

import (
	"strconv"
	"strings"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/domain"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/usecase"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/response"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ProgressHandler interface {
		GetUserProgress(ctx *fiber.Ctx) error
		GetLeaderboard(ctx *fiber.Ctx) error
		GetStudyTips(ctx *fiber.Ctx) error
	}

	progressHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ProgressUsecase
	}
)

func NewProgressHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ProgressUsecase) ProgressHandler {
	return &progressHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /progress/users/:user_id
func (h *progressHandler) GetUserProgress(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.PROGRESS_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	progress, err := h.usecase.GetUserProgress(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.PROGRESS_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_GET_SUCCESS, progress, nil).Send(ctx)
}

// GET /progress/lessons/:slug/leaderboard?limit=10
func (h *progressHandler) GetLeaderboard(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")
	if slug == "" {
		return response.NewFailed(domain.PROGRESS_LEADERBOARD_FAILED, fiber.NewError(fiber.StatusBadRequest, "slug is required"), h.logger).Send(ctx)
	}

	limit := 0
	if v := strings.TrimSpace(ctx.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	leaderboard, err := h.usecase.GetLeaderboard(ctx.UserContext(), slug, limit)
	if err != nil {
		return response.NewFailed(domain.PROGRESS_LEADERBOARD_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_LEADERBOARD_SUCCESS, leaderboard, nil).Send(ctx)
}

// GET /progress/users/:user_id/study-tips
func (h *progressHandler) GetStudyTips(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.PROGRESS_TIPS_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	tips, err := h.usecase.GenerateStudyTips(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.PROGRESS_TIPS_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_TIPS_SUCCESS, tips, nil).Send(ctx)
}
