package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"jailoo"
	"jailoo/config"
	"jailoo/internal/application/usecase"
	"jailoo/internal/infrastructure/broker"
	"jailoo/internal/infrastructure/database"
	"jailoo/internal/infrastructure/minio"
	"jailoo/internal/presentation/handler"
	"jailoo/internal/presentation/middleware"
	"jailoo/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running jailoo", "version", jailoo.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	dbWriter := database.NewPostWriter(db)
	dbRetriever := database.NewPostRetriever(db)
	dbLister := database.NewPostLister(db)
	dbUpdater := database.NewPostUpdater(db)
	dbRemover := database.NewPostRemover(db)

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, cfg.MinIOUploader)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, cfg.MinIORemover)

	creator := usecase.NewCreator(brokerPublisher, dbWriter, minIOUploader, minIORemover, dbRemover)
	updater := usecase.NewUpdater(dbRetriever, dbUpdater)
	deleter := usecase.NewDeleter(dbRetriever, dbRemover, minIORemover, cfg.MinIOUploader.Bucket)
	replacer := usecase.NewReplacer(brokerPublisher, dbRetriever, dbUpdater, minIOUploader, minIORemover)
	lister := usecase.NewLister(dbLister)
	getter := usecase.NewGetter(dbRetriever)

	createHandler := handler.NewCreatePostHandler(creator)
	updateHandler := handler.NewUpdatePostHandler(updater)
	deleteHandler := handler.NewDeletePostHandler(deleter)
	replaceHandler := handler.NewReplaceVideoHandler(replacer)
	listHandler := handler.NewListPostsHandler(lister)
	videoHandler := handler.NewGetVideoHandler(getter, cfg.MinIOUploader.PublicURL, cfg.MinIOUploader.Bucket)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	// Slightly above the 200 MiB video cap to leave room for the other
	// multipart fields.
	e.Use(echoMiddleware.BodyLimit("210M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/api/posts", listHandler.Handle)
	e.GET("/media/:object", videoHandler.Handle)

	adminAuth := middleware.AuthMiddleware(middleware.AuthConfig{Secret: cfg.Auth.Secret})
	admin := e.Group("/api/admin", adminAuth)
	admin.POST("/create-post", createHandler.Handle)
	admin.POST("/update-post", updateHandler.Handle)
	admin.POST("/delete-post", deleteHandler.Handle)
	admin.POST("/replace-video", replaceHandler.Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect from database", "err", err)
	}
	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker client", "err", err)
	}
}
