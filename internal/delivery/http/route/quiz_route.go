package route

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/handler"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoute(api *fiber.App, handler handler.QuizHandler, m *middleware.Middleware) {
	router := api.Group("/quizzes")
	{
		router.Post("/", handler.Create)
		router.Get("/:session_id", handler.Get)
		router.Post("/:session_id/start", handler.Start)
		router.Post("/:session_id/answers", handler.Answer)
		router.Post("/:session_id/navigate", handler.Navigate)
		router.Post("/:session_id/submit", handler.Submit)
		router.Post("/:session_id/retry", handler.Retry)
	}
}
