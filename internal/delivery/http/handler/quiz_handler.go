package handler

import (
	"errors"

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
	QuizHandler interface {
		Create(ctx *fiber.Ctx) error
		Start(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		Answer(ctx *fiber.Ctx) error
		Navigate(ctx *fiber.Ctx) error
		Submit(ctx *fiber.Ctx) error
		Retry(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// quizError converts domain errors into fiber errors so the response layer
// can pick the right status code. Session lifecycle violations are conflicts,
// bad input is a bad request.
func quizError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrQuizAlreadyStarted),
		errors.Is(err, usecase.ErrQuizNotInProgress),
		errors.Is(err, usecase.ErrQuizNotSubmitted),
		errors.Is(err, usecase.ErrUnansweredQuestions):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
}

// POST /quizzes
func (h *quizHandler) Create(ctx *fiber.Ctx) error {
	var req entity.CreateQuizRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	snapshot, err := h.usecase.CreateSession(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_CREATE_FAILED, quizError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_CREATE_SUCCESS, snapshot, nil).Send(ctx)
}

// POST /quizzes/:session_id/start
func (h *quizHandler) Start(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_START_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	snapshot, err := h.usecase.StartSession(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_START_FAILED, quizError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_START_SUCCESS, snapshot, nil).Send(ctx)
}

// GET /quizzes/:session_id
func (h *quizHandler) Get(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	snapshot, err := h.usecase.GetSession(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_GET_FAILED, quizError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_GET_SUCCESS, snapshot, nil).Send(ctx)
}

// POST /quizzes/:session_id/answers
func (h *quizHandler) Answer(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.AnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	snapshot, err := h.usecase.RecordAnswer(ctx.UserContext(), sessionID, req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, quizError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_ANSWER_SUCCESS, snapshot, nil).Send(ctx)
}

// POST /quizzes/:session_id/navigate
func (h *quizHandler) Navigate(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_NAVIGATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.NavigateRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_NAVIGATE_FAILED, err, h.logger).Send(ctx)
	}

	snapshot, err := h.usecase.Navigate(ctx.UserContext(), sessionID, req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_NAVIGATE_FAILED, quizError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_NAVIGATE_SUCCESS, snapshot, nil).Send(ctx)
}

// POST /quizzes/:session_id/submit
func (h *quizHandler) Submit(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.Submit(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_SUBMIT_FAILED, quizError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_SUBMIT_SUCCESS, result, nil).Send(ctx)
}

// POST /quizzes/:session_id/retry
func (h *quizHandler) Retry(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_RETRY_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	snapshot, err := h.usecase.Retry(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_RETRY_FAILED, quizError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_RETRY_SUCCESS, snapshot, nil).Send(ctx)
}
