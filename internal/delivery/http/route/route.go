package route

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/handler"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api             *fiber.App
	Middleware      *middleware.Middleware
	LessonHandler   handler.LessonHandler
	QuizHandler     handler.QuizHandler
	ProgressHandler handler.ProgressHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupLessonRoute(c.Api, c.LessonHandler, c.Middleware)
	SetupQuizRoute(c.Api, c.QuizHandler, c.Middleware)
	SetupProgressRoute(c.Api, c.ProgressHandler, c.Middleware)
}
