package cache

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/yyyklk/news-app/internal/news"
)

func testDB(t *testing.T) *Cache {
	t.Helper()
	db, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleArticles() []news.Article {
	return []news.Article{
		{ID: 0, Title: "Post A", Date: news.MustDate("2025-07-02"), Body: "甲。乙。"},
		{ID: 1, Title: "Post B", Date: news.MustDate("2025-06-28"), Body: "丙。"},
		{ID: 2, Title: "Post A", Date: news.MustDate("2025-06-30"), Body: "甲。乙。"},
	}
}

func TestLoadAndAll(t *testing.T) {
	db := testDB(t)
	if err := db.Load(sampleArticles()); err != nil {
		t.Fatalf("load: %v", err)
	}

	got, err := db.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(got))
	}
	// Load order, not date order; duplicates kept
	for i, a := range got {
		if a.ID != i {
			t.Errorf("position %d holds article %d", i, a.ID)
		}
	}
	if got[0].Body != "甲。乙。" || !got[0].Date.Equal(news.MustDate("2025-07-02")) {
		t.Errorf("unexpected first article: %+v", got[0])
	}
}

func TestLoadReplaces(t *testing.T) {
	db := testDB(t)
	if err := db.Load(sampleArticles()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := db.Attach(Record{ArticleID: 0, GraphRank: []string{"甲"}}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := db.Load(sampleArticles()[:1]); err != nil {
		t.Fatalf("second load: %v", err)
	}

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Articles != 1 || stats.Summarized != 0 {
		t.Errorf("unexpected stats after reload: %+v", stats)
	}
}

func TestAttachDropsBody(t *testing.T) {
	db := testDB(t)
	if err := db.Load(sampleArticles()); err != nil {
		t.Fatalf("load: %v", err)
	}

	rec := Record{ArticleID: 1, GraphRank: []string{"丙"}, KeywordDensity: []string{"丙"}}
	if err := db.Attach(rec); err != nil {
		t.Fatalf("attach: %v", err)
	}

	all, _ := db.All()
	if all[1].Body != "" {
		t.Errorf("expected body dropped, got %q", all[1].Body)
	}
	if all[0].Body == "" {
		t.Error("unrelated article lost its body")
	}

	got, err := db.Summary(1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(got.GraphRank) != 1 || got.GraphRank[0] != "丙" {
		t.Errorf("unexpected graph summary: %v", got.GraphRank)
	}
	if len(got.KeywordDensity) != 1 || got.KeywordDensity[0] != "丙" {
		t.Errorf("unexpected keyword summary: %v", got.KeywordDensity)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestAttachEmptySummaries(t *testing.T) {
	db := testDB(t)
	if err := db.Load(sampleArticles()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := db.Attach(Record{ArticleID: 2}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	got, err := db.Summary(2)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(got.GraphRank) != 0 || len(got.KeywordDensity) != 0 {
		t.Errorf("expected empty summaries, got %+v", got)
	}
}

func TestAttachUnknownArticle(t *testing.T) {
	db := testDB(t)
	if err := db.Load(sampleArticles()); err != nil {
		t.Fatalf("load: %v", err)
	}
	err := db.Attach(Record{ArticleID: 42})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryNotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.Summary(0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	db := testDB(t)
	if err := db.Load(sampleArticles()); err != nil {
		t.Fatalf("load: %v", err)
	}
	db.Attach(Record{ArticleID: 0})
	db.Attach(Record{ArticleID: 0})
	db.Attach(Record{ArticleID: 2})

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Articles != 3 || stats.Summarized != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Load(sampleArticles()); err != nil {
		t.Fatalf("load: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	got, err := db.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 articles after reopen, got %d", len(got))
	}
}

func TestAttachNilCache(t *testing.T) {
	var c *Cache
	if err := c.Attach(Record{ArticleID: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
