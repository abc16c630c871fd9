package cmd

import (
	"fmt"
	"time"

	"github.com/yyyklk/news-app/internal/cache"
	"github.com/yyyklk/news-app/internal/config"
	"github.com/yyyklk/news-app/internal/digest"
	"github.com/yyyklk/news-app/internal/filter"
	"github.com/yyyklk/news-app/internal/keyword"
	"github.com/yyyklk/news-app/internal/logging"
	"github.com/yyyklk/news-app/internal/news"
	"github.com/yyyklk/news-app/internal/summary"
	"go.uber.org/zap"
)

// session is everything a command needs after startup: config, logger, the
// loaded collection and its store.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *cache.Cache
	articles []news.Article
}

type logTarget int

const (
	logToFile logTarget = iota
	logToStderr
)

// openSession loads config and the news collection. Missing data is fatal.
func openSession(target logTarget) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	path := logging.FilePath()
	if target == logToStderr || flagVerbose {
		path = ""
	}
	log, err := logging.New(level, path)
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	articles, err := news.Load(cfg.DataDir, cfg.DataFile)
	if err != nil {
		log.Error("loading news", zap.String("dir", cfg.DataDir), zap.Error(err))
		return nil, fmt.Errorf("loading news: %w", err)
	}

	store, err := cache.Open(cache.MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if err := store.Load(articles); err != nil {
		store.Close()
		return nil, fmt.Errorf("caching articles: %w", err)
	}
	stored, err := store.All()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("reading cached articles: %w", err)
	}

	log.Info("news loaded",
		zap.String("dir", cfg.DataDir),
		zap.String("file", cfg.DataFile),
		zap.Int("articles", len(stored)),
	)
	return &session{cfg: cfg, log: log, store: store, articles: stored}, nil
}

func (s *session) Close() {
	_ = s.log.Sync()
	s.store.Close()
}

func (s *session) sentences() int {
	if flagSentences > 0 {
		return flagSentences
	}
	return s.cfg.GetSentences()
}

// summarizers builds both summarizers. Loading the segmentation dictionary
// takes a moment, so only commands that summarize call this.
func (s *session) summarizers() (digest.Summarizers, error) {
	start := time.Now()
	tfidf, err := keyword.NewTFIDF(s.cfg.IDFPath)
	if err != nil {
		return digest.Summarizers{}, fmt.Errorf("loading keyword extractor: %w", err)
	}
	s.log.Info("keyword extractor loaded",
		zap.String("idf", s.cfg.IDFPath),
		zap.Duration("took", time.Since(start)),
	)
	return digest.Summarizers{
		Graph: summary.GraphRank{Terminator: s.cfg.Terminator},
		Keyword: summary.KeywordDensity{
			Extractor:  tfidf,
			TopK:       s.cfg.GetKeywordTopK(),
			Terminator: s.cfg.Terminator,
		},
		Sentences: s.sentences(),
		Recorder:  s.store,
		Log:       s.log,
	}, nil
}

// defaultRange is the preset window: configured start through today.
func (s *session) defaultRange(today news.Date) filter.DateRange {
	return filter.DateRange{Start: s.cfg.StartDate(), End: today}
}

// query resolves --from, --to and --keyword. Unlike the interactive
// surfaces, a bad date here is an error.
func (s *session) query(today news.Date) (filter.Query, error) {
	r, err := filter.ParseRange(flagFrom, flagTo, s.defaultRange(today), s.cfg.Earliest())
	if err != nil {
		return filter.Query{}, fmt.Errorf("invalid date flag: %w", err)
	}
	return filter.Query{Range: r, Keywords: filter.CleanKeywords(flagKeywords)}, nil
}
