package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/config"
	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/logger"
	"github.com/abhisek/precis/internal/metrics"
	"github.com/abhisek/precis/internal/sheets"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/vocab"
	"github.com/abhisek/precis/internal/workflow"
)

// needs selects the optional parts of an env.
type needs int

const (
	needStore needs = 1 << iota
	needLLM
	needSurvey
	// logToFile sends logs next to the database instead of stderr.
	logToFile
)

// env is what the commands share. Optional parts are nil when not asked for
// or when they could not be built; llmErr says why the generator is missing.
type env struct {
	cfg        *config.Config
	log        *logger.Logger
	metrics    *metrics.Metrics
	vocab      *vocab.Catalog
	curriculum *curriculum.Catalog

	store     *store.Store
	events    store.EventRepo
	provider  llm.Provider
	generator *summarize.Service
	llmErr    error

	survey       survey.Recorder
	surveySource survey.Source

	closers []func()
}

// newEnv loads configuration and builds what n asks for. The word lists and
// the curriculum are always loaded; neither needs the network.
func newEnv(cmd *cobra.Command, n needs, defaultLevel string) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, metrics: metrics.New()}

	var dbPath string
	if n&(needStore|logToFile) != 0 {
		if dbPath, err = resolveDBPath(cmd, cfg); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	logOpts := logger.Options{Mode: cfg.Log.Mode, Level: cfg.Log.Level, File: cfg.Log.File}
	if logOpts.Level == "" {
		logOpts.Level = defaultLevel
	}
	if n&logToFile != 0 && logOpts.File == "" {
		logOpts.File = filepath.Join(filepath.Dir(dbPath), "precis.log")
	}
	if e.log, err = logger.New(logOpts); err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	e.closers = append(e.closers, e.log.Sync)

	eraA, eraB := cfg.Vocab.Paths()
	e.vocab = vocab.Load(eraA, eraB)
	for _, r := range e.vocab.Reports() {
		if r.Degraded() {
			e.log.Warn("word list unavailable", "era", r.Era, "source", r.Source, "status", r.Status, "error", r.Err)
		}
	}

	if e.curriculum, err = curriculum.LoadDefault(); err != nil {
		e.close()
		return nil, fmt.Errorf("load curriculum: %w", err)
	}

	if n&needStore != 0 {
		if e.store, err = store.Open(dbPath); err != nil {
			e.close()
			return nil, fmt.Errorf("open database: %w", err)
		}
		e.events = e.store.EventRepo()
		e.closers = append(e.closers, func() { _ = e.store.Close() })
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if n&needLLM != 0 {
		e.buildLLM(ctx)
	}
	if n&needSurvey != 0 {
		e.buildSurvey(ctx)
	}
	return e, nil
}

func (e *env) buildLLM(ctx context.Context) {
	lc := e.cfg.LLMConfig()
	if !lc.HasKey() {
		e.llmErr = fmt.Errorf("no API key configured for %s", lc.Provider)
		return
	}

	opts := llm.Options{Logger: e.log, Observer: e.metrics.ObserveLLM, Mock: summarize.OfflineProvider()}
	if e.events != nil {
		opts.Events = e.events
	}
	p, err := llm.NewProvider(ctx, lc, opts)
	if err != nil {
		e.llmErr = err
		return
	}
	e.provider = p
	e.generator = summarize.New(p, e.curriculum, e.vocab, summarize.DefaultConfig())
}

// buildSurvey writes to the spreadsheet when it is configured, mirroring
// locally, and to the local store alone otherwise.
func (e *env) buildSurvey(ctx context.Context) {
	var local *survey.LocalRecorder
	if e.store != nil {
		local = survey.NewLocalRecorder(e.store.SurveyRepo())
	}

	if e.cfg.Sheets.Enabled() {
		client, err := sheets.New(ctx, e.cfg.Sheets, e.log)
		if err == nil {
			tee := &survey.Tee{
				Primary:     client,
				PrimaryName: "sheets",
				Log:         e.log,
				Observe:     e.metrics.ObserveSurvey,
			}
			if local != nil {
				tee.Mirror = local
			}
			e.survey = tee
			e.surveySource = client
			return
		}
		e.log.Warn("google sheets unavailable, keeping survey responses locally", "error", err)
	}

	if local != nil {
		e.survey = &survey.Tee{Primary: local, PrimaryName: "local", Log: e.log, Observe: e.metrics.ObserveSurvey}
		e.surveySource = local
	}
}

// runner builds the interactive workflow, or nil without a generator.
func (e *env) runner() *workflow.Runner {
	if e.generator == nil {
		return nil
	}
	d := workflow.Deps{
		Summarizer:      e.generator,
		Vocab:           e.vocab,
		Log:             e.log,
		ObserveAnalysis: e.metrics.ObserveAnalysis,
	}
	if e.events != nil {
		d.Events = e.events
	}
	if e.survey != nil {
		d.Survey = e.survey
	}
	return workflow.NewRunner(d)
}

// providerStatus describes the LLM setup for headers and status bars.
func (e *env) providerStatus() string {
	if e.provider == nil {
		return ""
	}
	return fmt.Sprintf("%s · %s", e.cfg.LLMConfig().Provider, e.provider.ModelID())
}

// requireGenerator returns the reason commands that call the LLM cannot run.
func (e *env) requireGenerator() error {
	switch {
	case e.generator != nil:
		return nil
	case e.llmErr != nil:
		return fmt.Errorf("LLM provider not configured: %w", e.llmErr)
	default:
		return fmt.Errorf("LLM provider not configured")
	}
}

func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}
