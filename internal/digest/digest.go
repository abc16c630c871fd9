// Package digest runs both summarizers over a filtered set of articles.
package digest

import (
	"time"

	"github.com/google/uuid"
	"github.com/yyyklk/news-app/internal/cache"
	"github.com/yyyklk/news-app/internal/news"
	"github.com/yyyklk/news-app/internal/summary"
	"go.uber.org/zap"
)

// Entry is an article after summarization. The body is not carried over.
type Entry struct {
	Index          int       `json:"index"`
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Date           news.Date `json:"date"`
	GraphRank      []string  `json:"graph_rank"`
	KeywordDensity []string  `json:"keyword_density"`
}

// ProgressFunc is called after each article; done counts from 1.
type ProgressFunc func(done, total int, a news.Article)

// Recorder keeps finished entries for the session.
type Recorder interface {
	Attach(r cache.Record) error
}

// Summarizers runs the graph and keyword summarizers over articles.
type Summarizers struct {
	Graph     summary.Summarizer
	Keyword   summary.Summarizer
	Sentences int
	Recorder  Recorder
	Log       *zap.Logger
}

func (s Summarizers) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s Summarizers) sentences() int {
	if s.Sentences <= 0 {
		return 3
	}
	return s.Sentences
}

// Entry summarizes one article. A failing summarizer leaves its list empty.
func (s Summarizers) Entry(a news.Article) Entry {
	log := s.logger().With(zap.Int("article", a.ID))
	e := Entry{ID: a.ID, Title: a.Title, Date: a.Date}

	e.GraphRank = s.run("graph_rank", s.Graph, a.Body, log)
	e.KeywordDensity = s.run("keyword_density", s.Keyword, a.Body, log)

	if s.Recorder != nil {
		err := s.Recorder.Attach(cache.Record{
			ArticleID:      a.ID,
			GraphRank:      e.GraphRank,
			KeywordDensity: e.KeywordDensity,
			CreatedAt:      time.Now(),
		})
		if err != nil {
			log.Warn("recording summaries", zap.Error(err))
		}
	}
	return e
}

func (s Summarizers) run(name string, sum summary.Summarizer, text string, log *zap.Logger) []string {
	if sum == nil {
		return []string{}
	}
	out, err := sum.Summarize(text, s.sentences())
	if err != nil {
		log.Warn("summarizer failed", zap.String("summarizer", name), zap.Error(err))
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

// Run summarizes articles one after another, in order.
func (s Summarizers) Run(articles []news.Article, progress ProgressFunc) []Entry {
	log := s.logger().With(zap.String("run", uuid.NewString()))
	start := time.Now()
	log.Info("digest started", zap.Int("articles", len(articles)))

	run := s
	run.Log = log
	entries := make([]Entry, 0, len(articles))
	for i, a := range articles {
		e := run.Entry(a)
		e.Index = i + 1
		entries = append(entries, e)
		if progress != nil {
			progress(i+1, len(articles), a)
		}
	}

	log.Info("digest finished", zap.Int("articles", len(entries)), zap.Duration("took", time.Since(start)))
	return entries
}
