package route

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/handler"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoute(api *fiber.App, handler handler.LessonHandler, m *middleware.Middleware) {
	router := api.Group("/lessons")
	{
		router.Get("/", handler.List)
		router.Get("/:slug", handler.Get)
	}
}
