package route

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/handler"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoute(api *fiber.App, handler handler.ProgressHandler, m *middleware.Middleware) {
	router := api.Group("/progress")
	{
		router.Get("/users/:user_id", handler.GetUserProgress)
		router.Get("/users/:user_id/study-tips", handler.GetStudyTips)
		router.Get("/lessons/:slug/leaderboard", handler.GetLeaderboard)
	}
}
