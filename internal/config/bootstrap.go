package config

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/handler"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/middleware"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/repository"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/route"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/usecase"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/board"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/llm"
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Redis     redis.UniversalClient
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	apiKey := ""
	model := ""
	baseURL := ""
	prefix := "english-learning"
	if config.Config != nil {
		apiKey = config.Config.GetString("llm.api_key")
		model = config.Config.GetString("llm.model")
		baseURL = config.Config.GetString("llm.base_url")
		if v := config.Config.GetString("redis.leaderboard_prefix"); v != "" {
			prefix = v
		}
	}

	var leaderboard *board.Board
	if config.Redis != nil {
		leaderboard = board.New(config.Redis, prefix)
	}

	tipsClient := llm.NewClient(apiKey, model, baseURL)
	lessonRepo := repository.NewLessonRepository(config.DB)
	progressRepo := repository.NewProgressRepository(config.DB)
	store := usecase.NewSessionStore()
	generator := usecase.NewQuizGenerator(nil)

	lessonUsecase := usecase.NewLessonUsecase(usecase.LessonUsecaseConfig{
		DB:         config.DB,
		Log:        config.Log,
		Repository: lessonRepo,
	})
	quizUsecase := usecase.NewQuizUsecase(usecase.QuizUsecaseConfig{
		DB:           config.DB,
		Log:          config.Log,
		LessonRepo:   lessonRepo,
		ProgressRepo: progressRepo,
		Board:        leaderboard,
		Generator:    generator,
		Store:        store,
	})
	leaderboardSize := 10
	if config.Config != nil {
		if v := config.Config.GetInt("quiz.leaderboard_size"); v > 0 {
			leaderboardSize = v
		}
	}

	progressUsecase := usecase.NewProgressUsecase(usecase.ProgressUsecaseConfig{
		DB:              config.DB,
		Log:             config.Log,
		Repository:      progressRepo,
		Board:           leaderboard,
		LLM:             tipsClient,
		LeaderboardSize: leaderboardSize,
	})

	lessonHandler := handler.NewLessonHandler(config.Validator, config.Log, lessonUsecase)
	quizHandler := handler.NewQuizHandler(config.Validator, config.Log, quizUsecase)
	progressHandler := handler.NewProgressHandler(config.Validator, config.Log, progressUsecase)

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		LessonHandler:   lessonHandler,
		QuizHandler:     quizHandler,
		ProgressHandler: progressHandler,
	})

}
