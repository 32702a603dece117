package main

import (
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/sushihentaime/newshub/internal/articleservice"
	"github.com/sushihentaime/newshub/internal/common"
	"github.com/sushihentaime/newshub/internal/topicservice"
	"github.com/sushihentaime/newshub/internal/userservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	articleService *articleservice.ArticleService
	topicService   *topicservice.TopicService
	userService    *userservice.UserService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Initialize the services
	app := &application{
		config:         cfg,
		logger:         logger,
		articleService: articleservice.NewArticleService(db),
		topicService:   topicservice.NewTopicService(db),
		userService:    userservice.NewUserService(db),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
