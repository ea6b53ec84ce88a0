package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/pario-ai/tagtally/pkg/analyzer"
	"github.com/pario-ai/tagtally/pkg/cache/file"
	"github.com/pario-ai/tagtally/pkg/config"
	"github.com/pario-ai/tagtally/pkg/history"
	"github.com/pario-ai/tagtally/pkg/logging"
	"github.com/pario-ai/tagtally/pkg/models"
	"github.com/pario-ai/tagtally/pkg/search"
	"github.com/pario-ai/tagtally/pkg/service"
)

// app is the process-scoped state shared by a command run.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *file.Store
	hist   *history.Store
	svc    *service.Service
	stop   analyzer.StopWords
	styled bool
}

// report is the co-occurrence result for one hashtag.
type report struct {
	Hashtag  string             `json:"hashtag"`
	Hashtags models.RankedTally `json:"hashtags"`
	Words    models.RankedTally `json:"words"`
}

// loadConfig reads the config and builds the logger.
func loadConfig(gf *globalFlags) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadOrDefault(gf.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	level := cfg.Log.Level
	if gf.logLevel != "" {
		level = gf.logLevel
	}
	return cfg, logging.Stderr(level), nil
}

// newApp wires the cache, history and search client. Credentials are
// checked before anything touches the network.
func newApp(ctx context.Context, gf *globalFlags) (*app, error) {
	cfg, log, err := loadConfig(gf)
	if err != nil {
		return nil, err
	}

	hc, err := search.NewHTTPClient(ctx, cfg.Auth, cfg.Search.Timeout)
	if err != nil {
		return nil, err
	}

	stop := analyzer.DefaultStopWords()
	if cfg.Analysis.StopWordsFile != "" {
		extra, err := analyzer.LoadStopWords(cfg.Analysis.StopWordsFile)
		if err != nil {
			return nil, err
		}
		stop = stop.Merge(extra)
	}

	a := &app{
		cfg:    cfg,
		log:    log,
		store:  file.Open(cfg.CachePath, log),
		stop:   stop,
		styled: term.IsTerminal(int(os.Stdout.Fd())),
	}

	opts := []service.Option{service.WithLogger(log)}
	if cfg.History {
		hist, err := history.New(cfg.HistoryDB)
		if err != nil {
			return nil, err
		}
		a.hist = hist
		opts = append(opts, service.WithRecorder(hist))
	}

	a.svc = service.New(a.store, search.NewClient(hc, log), opts...)
	return a, nil
}

func (a *app) Close() {
	if a.hist != nil {
		_ = a.hist.Close()
	}
}

// analyze fetches hashtag through the cache and ranks the result.
func (a *app) analyze(ctx context.Context, hashtag string) (report, error) {
	raw, err := a.svc.FetchWithCache(ctx, a.cfg.Search.Endpoint, hashtag, a.cfg.Search.Count)
	if err != nil {
		return report{}, err
	}
	return buildReport(raw, hashtag, a.stop, a.cfg.Analysis)
}

func buildReport(raw json.RawMessage, hashtag string, stop analyzer.StopWords, cfg config.AnalysisConfig) (report, error) {
	rs, err := models.DecodeResultSet(raw)
	if err != nil {
		return report{}, fmt.Errorf("analyze %s: %w", hashtag, err)
	}
	return report{
		Hashtag:  hashtag,
		Hashtags: analyzer.TopHashtags(rs, hashtag, cfg.TopHashtags),
		Words:    analyzer.TopWords(rs, stop, cfg.TopWords),
	}, nil
}
