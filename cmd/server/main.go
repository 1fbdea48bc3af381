package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rapidreads/rapidreads-backend/internal/conf"
	"github.com/rapidreads/rapidreads-backend/internal/news/biz"
	"github.com/rapidreads/rapidreads-backend/internal/news/extractor"
	"github.com/rapidreads/rapidreads-backend/internal/news/finder"
	"github.com/rapidreads/rapidreads-backend/internal/news/llm"
	"github.com/rapidreads/rapidreads-backend/internal/news/service"
	"github.com/rapidreads/rapidreads-backend/internal/news/types"
	"github.com/rapidreads/rapidreads-backend/internal/pkg/logger"
	"github.com/rapidreads/rapidreads-backend/internal/pkg/workerpool"
	"github.com/rapidreads/rapidreads-backend/internal/server"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration; missing API keys are fatal before anything serves.
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logConfig := &logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := logger.InitGlobal(logConfig); err != nil {
		log.Fatal("failed to initialize global logger", zap.Error(err))
	}

	log.Info("config loaded successfully")

	// News-search provider
	factory := finder.NewFactory()
	newsProvider, err := factory.Create(&types.ProviderConfig{
		ID:      types.ProviderID(config.News.Provider),
		Name:    config.News.Provider,
		APIHost: config.News.APIHost,
		APIKey:  config.News.APIKey,
		Timeout: int(config.News.Timeout / time.Second),
	})
	if err != nil {
		log.Fatal("failed to create news provider", zap.Error(err))
	}

	// LLM client
	chatClient, err := llm.NewOpenAIClient(&llm.OpenAIConfig{
		APIKey:  config.LLM.APIKey,
		BaseURL: config.LLM.BaseURL,
		Model:   config.LLM.Model,
		Timeout: config.LLM.Timeout,
	}, log.Logger)
	if err != nil {
		log.Fatal("failed to create llm client", zap.Error(err))
	}

	// Worker pool for the per-article fan-out
	pool, err := workerpool.New(config.Pipeline.Workers, log.Logger)
	if err != nil {
		log.Fatal("failed to create worker pool", zap.Error(err))
	}
	defer pool.Shutdown()

	// Pipeline use case
	reportUseCase := biz.NewReportUseCase(biz.ReportUseCaseDeps{
		Finder:         newsProvider,
		Extractor:      extractor.New(config.News.Timeout, log.Logger),
		Client:         chatClient,
		Pool:           pool,
		ArticleTimeout: config.Pipeline.ArticleTimeout,
		Logger:         log.Logger,
	})

	// HTTP service and server
	newsService := service.NewNewsService(reportUseCase, factory.ListProviders(), config.Pipeline.DefaultCount, log)
	httpServer := server.NewHTTPServer(config, log.Logger, newsService)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
