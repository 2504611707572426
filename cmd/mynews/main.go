package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mynewsdev/mynews/internal/cache"
	"github.com/mynewsdev/mynews/internal/config"
	"github.com/mynewsdev/mynews/internal/feed"
	"github.com/mynewsdev/mynews/internal/gemini"
	"github.com/mynewsdev/mynews/internal/logger"
	"github.com/mynewsdev/mynews/internal/mockdata"
	"github.com/mynewsdev/mynews/internal/newsapi"
	"github.com/mynewsdev/mynews/internal/ratelimit"
	"github.com/mynewsdev/mynews/internal/rss"
	"github.com/mynewsdev/mynews/internal/scraper"
	"github.com/mynewsdev/mynews/internal/server"
	"github.com/mynewsdev/mynews/internal/storage"
	"github.com/mynewsdev/mynews/internal/tts"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(false)
		logger.New("main").Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Init(cfg.Debug)
	log := logger.New("main")

	feeds, err := rss.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		log.Error("load feeds config", slog.Any("err", err))
		os.Exit(1)
	}
	rssSource := rss.NewSource(feeds, cfg.RequestTimeout, logger.New("rss"))
	log.Info("feeds loaded", slog.Int("count", len(feeds)))

	var api feed.HeadlineSource
	if cfg.NewsAPIKey != "" {
		api = newsapi.New(cfg.NewsAPIKey, cfg.PageSize, cfg.RequestTimeout, logger.New("newsapi"))
	} else {
		log.Warn("NEWSAPI_KEY not set, running feed-only aggregation")
	}

	feedSvc := feed.New(api, rssSource, mockdata.Articles(), logger.New("feed"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var ai *gemini.Client
	if cfg.GeminiAPIKey != "" {
		ai, err = gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Error("init gemini client", slog.Any("err", err))
			os.Exit(1)
		}
		defer ai.Close()
	} else {
		log.Warn("GEMINI_API_KEY not set, AI endpoints disabled")
	}

	var speech *tts.Client
	if cfg.OpenAIAPIKey != "" {
		speech = tts.New(cfg.OpenAIAPIKey, cfg.TTSTimeout, logger.New("tts"))
	} else {
		log.Warn("OPENAI_API_KEY not set, audio endpoint disabled")
	}

	store := storage.NewBriefingStore(cfg.BriefingStorePath)
	if err := store.Load(); err != nil {
		log.Warn("load briefing store", slog.Any("err", err))
	}

	budget := ratelimit.NewAIBudget(cfg.MaxGeminiPerDay, cfg.MaxTTSPerDay, cfg.MaxAIPerDay, logger.New("ratelimit"))
	aiCache := cache.New(cfg.CacheMaxEntries)
	defer aiCache.Close()
	sc := scraper.New(cfg.RequestTimeout)

	srv := server.New(logger.New("server"), cfg, feedSvc, rssSource, ai, speech, store, budget, aiCache, sc)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
