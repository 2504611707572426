// Package server wires the HTTP API.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mynewsdev/mynews/internal/cache"
	"github.com/mynewsdev/mynews/internal/config"
	"github.com/mynewsdev/mynews/internal/feed"
	"github.com/mynewsdev/mynews/internal/gemini"
	"github.com/mynewsdev/mynews/internal/metrics"
	"github.com/mynewsdev/mynews/internal/mockdata"
	"github.com/mynewsdev/mynews/internal/news"
	"github.com/mynewsdev/mynews/internal/ratelimit"
	"github.com/mynewsdev/mynews/internal/rss"
	"github.com/mynewsdev/mynews/internal/scraper"
	"github.com/mynewsdev/mynews/internal/storage"
	"github.com/mynewsdev/mynews/internal/tts"
)

const (
	kindBriefing = "briefing"
	kindDigest   = "digest"

	dayTTL = 24 * time.Hour
)

type Server struct {
	log     *slog.Logger
	cfg     *config.Config
	feed    *feed.Service
	rss     *rss.Source
	ai      *gemini.Client // nil when GEMINI_API_KEY is missing
	speech  *tts.Client    // nil when OPENAI_API_KEY is missing
	store   *storage.BriefingStore
	budget  *ratelimit.AIBudget
	cache   *cache.Cache
	scraper *scraper.Scraper
}

func New(log *slog.Logger, cfg *config.Config, feedSvc *feed.Service, rssSource *rss.Source,
	ai *gemini.Client, speech *tts.Client, store *storage.BriefingStore,
	budget *ratelimit.AIBudget, aiCache *cache.Cache, sc *scraper.Scraper) *Server {
	return &Server{
		log:     log,
		cfg:     cfg,
		feed:    feedSvc,
		rss:     rssSource,
		ai:      ai,
		speech:  speech,
		store:   store,
		budget:  budget,
		cache:   aiCache,
		scraper: sc,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/feed", s.handleFeed)
		r.Get("/trending", s.handleTrending)
		r.Get("/sources", s.handleSources)
		r.Post("/summarize", s.handleSummarize)
		r.Get("/briefing", s.handleBriefing)
		r.Get("/digest", s.handleDigest)
		r.Post("/briefing/audio", s.handleAudio)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()
	stats["ai_budget"] = s.budget.GetStats()
	writeJSON(w, http.StatusOK, stats)
}

// handleFeed serves the aggregated article list. It never errors: with
// all sources down it falls back to sample data.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	category := news.Category(strings.TrimSpace(r.URL.Query().Get("category")))
	if category == "" {
		category = news.CategoryForYou
	}

	disabled := parseDisabled(r.URL.Query().Get("disabled"))

	result := s.feed.Articles(r.Context(), category, disabled)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"topics": mockdata.Topics()})
}

// handleSources lists the configured feed sources for the settings UI.
func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	type source struct {
		Name     string        `json:"name"`
		URL      string        `json:"url"`
		Category news.Category `json:"category"`
		Group    string        `json:"group"`
	}
	feeds := s.rss.Feeds()
	sources := make([]source, 0, len(feeds))
	for _, fc := range feeds {
		sources = append(sources, source{Name: fc.Name, URL: fc.URL, Category: fc.Category, Group: fc.Group})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sources": sources})
}

type summarizeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ArticleID   string `json:"articleId"`
	URL         string `json:"url"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if s.ai == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "GEMINI_API_KEY not configured"})
		return
	}

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Title == "" || req.Description == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title and description are required"})
		return
	}

	cacheKey := req.ArticleID
	if cacheKey == "" {
		cacheKey = cache.GenerateKey(req.Title, req.Description)
	}
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.budget.RecordCacheHit()
		writeJSON(w, http.StatusOK, cached)
		return
	}

	if err := s.budget.UseGemini(); err != nil {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}

	content := req.Content
	// A teaser-only article gets its full text scraped before
	// summarization.
	if len(content) < 200 && req.URL != "" && s.scraper != nil {
		if scraped, err := s.scraper.ExtractContent(r.Context(), req.URL); err == nil {
			content = scraped
		} else {
			s.log.Debug("content scrape failed", slog.String("url", req.URL), slog.Any("err", err))
		}
	}

	result, err := s.ai.SummarizeArticle(r.Context(), req.Title, req.Description, content)
	if err != nil {
		s.log.Error("summarize failed", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "AI summarization failed"})
		return
	}

	s.cache.Set(cacheKey, result, dayTTL)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBriefing(w http.ResponseWriter, r *http.Request) {
	s.handleDaily(w, r, kindBriefing)
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	s.handleDaily(w, r, kindDigest)
}

// handleDaily serves the day-cached briefing or digest, generating it
// at most once per calendar day.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request, kind string) {
	if s.ai == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "GEMINI_API_KEY not configured"})
		return
	}

	now := time.Now()
	today := cache.DayKey(now)

	if content, ok := s.store.Get(kind, today); ok {
		s.budget.RecordCacheHit()
		writeJSON(w, http.StatusOK, map[string]string{kind: content, "date": today})
		return
	}

	if err := s.budget.UseGemini(); err != nil {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}

	var (
		content string
		err     error
	)
	switch kind {
	case kindBriefing:
		articles := s.feed.Top(r.Context(), s.cfg.BriefingArticles)
		content, err = s.ai.MorningBriefing(r.Context(), articles, now)
	case kindDigest:
		articles := s.feed.Top(r.Context(), s.cfg.DigestArticles)
		content, err = s.ai.EveningDigest(r.Context(), articles, now)
	}
	if err != nil {
		s.log.Error("daily generation failed", slog.String("kind", kind), slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: kind + " generation failed"})
		return
	}

	if err := s.store.Put(kind, today, content); err != nil {
		s.log.Warn("persist daily content failed", slog.String("kind", kind), slog.Any("err", err))
	}

	writeJSON(w, http.StatusOK, map[string]string{kind: content, "date": today})
}

type audioRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	if s.speech == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "OPENAI_API_KEY not configured"})
		return
	}

	var req audioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text is required"})
		return
	}

	today := cache.DayKey(time.Now())
	audioKey := "audio:" + today
	if cached, ok := s.cache.Get(audioKey); ok {
		if audio, isBytes := cached.([]byte); isBytes {
			s.budget.RecordCacheHit()
			writeAudio(w, audio)
			return
		}
	}

	if err := s.budget.UseTTS(); err != nil {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}

	audio, err := s.speech.Speak(r.Context(), req.Text)
	if err != nil {
		s.log.Error("audio generation failed", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "TTS generation failed"})
		return
	}

	s.cache.Set(audioKey, audio, dayTTL)
	writeAudio(w, audio)
}

// Run serves the router until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.BindAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Briefing generation and TTS can take most of a minute.
		WriteTimeout: 90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("addr", s.cfg.BindAddr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// parseDisabled parses the comma-separated list of feed source names
// excluded for this request.
func parseDisabled(raw string) map[string]bool {
	if raw == "" {
		return nil
	}
	disabled := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			disabled[name] = true
		}
	}
	return disabled
}

func writeAudio(w http.ResponseWriter, audio []byte) {
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
