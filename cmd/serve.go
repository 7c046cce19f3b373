package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the summary assistant as a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, needStore|needLLM|needSurvey, "info")
		if err != nil {
			return err
		}
		defer e.close()

		addr := e.cfg.HTTP.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}
		if e.llmErr != nil {
			e.log.Warn("LLM provider not configured; summary and feedback routes will answer 503", "error", e.llmErr)
		}
		if !e.cfg.Sheets.Enabled() {
			e.log.Info("google sheets not configured; survey responses stay local", "missing", e.cfg.Sheets.Missing())
		}

		if e.cfg.Log.Mode == "prod" || e.cfg.Log.Mode == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		d := api.Deps{
			Curriculum: e.curriculum,
			Vocab:      e.vocab,
			Events:     e.events,
			Metrics:    e.metrics,
			Log:        e.log,
		}
		if e.generator != nil {
			d.Generator = e.generator
		}
		if e.survey != nil {
			d.Survey = e.survey
			d.SurveySource = e.surveySource
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := api.Serve(ctx, addr, api.NewRouter(d), e.log); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}
