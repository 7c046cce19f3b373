// Package api serves the summary assistant over a JSON HTTP API.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/logger"
	"github.com/abhisek/precis/internal/metrics"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/vocab"
)

// Generator produces the LLM-backed results.
type Generator interface {
	Summarize(ctx context.Context, in summarize.SummaryInput) (*summarize.Summary, error)
	Feedback(ctx context.Context, in summarize.FeedbackInput) (*summarize.Feedback, error)
	TranslateKeywords(ctx context.Context, words []string) (map[string]string, error)
}

// Deps wires the handlers. Generator, Events, Survey, SurveySource and
// Metrics may be nil; the routes that need a missing one answer 503.
type Deps struct {
	Curriculum   *curriculum.Catalog
	Vocab        *vocab.Catalog
	Generator    Generator
	Events       store.EventRepo
	Survey       survey.Recorder
	SurveySource survey.Source
	Metrics      *metrics.Metrics
	Log          *logger.Logger
}

type handler struct {
	Deps
	log *logger.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Vocab == nil {
		d.Vocab = vocab.NewCatalog(nil, nil)
	}
	h := &handler{Deps: d, log: d.Log.With("component", "api")}

	router := gin.New()
	router.Use(gin.Recovery(), h.observe())

	router.GET("/healthz", healthz)
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := router.Group("/api")
	{
		api.GET("/curriculum", h.getCurriculum)
		api.GET("/vocabulary", h.getVocabulary)
		api.POST("/vocabulary/analyze", h.analyzeVocabulary)
		api.POST("/keywords", h.extractKeywords)
		api.POST("/summary", h.summary)
		api.POST("/feedback", h.feedback)
		api.POST("/survey", h.submitSurvey)
		api.GET("/survey/stats", h.surveyStats)
	}
	return router
}

// observe logs each request and feeds the HTTP metrics.
func (h *handler) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		if h.Metrics != nil {
			h.Metrics.ObserveHTTP(c.FullPath(), c.Request.Method, status, elapsed)
		}
		h.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", elapsed.Milliseconds(),
		)
	}
}

func healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Serve runs the router on addr until ctx is done, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, router http.Handler, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
