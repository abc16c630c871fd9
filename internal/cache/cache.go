// Package cache is the session store: the loaded article collection and the
// summaries attached to it, held in SQLite. The default DSN keeps everything
// in memory for the lifetime of the process.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yyyklk/news-app/internal/news"
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the store in process memory.
const MemoryDSN = ":memory:"

var (
	ErrNotFound = errors.New("article not found")
	ErrClosed   = errors.New("cache not open")
)

type Cache struct {
	db *sql.DB
}

func Open(dsn string) (*Cache, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	// Every :memory: connection is its own database.
	db.SetMaxOpenConns(1)

	c := &Cache{db: db}
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			id    INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			date  TEXT NOT NULL,
			body  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);

		CREATE TABLE IF NOT EXISTS summaries (
			article_id INTEGER PRIMARY KEY REFERENCES articles(id),
			graph      TEXT NOT NULL,
			keyword    TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Load replaces the stored collection with articles.
func (c *Cache) Load(articles []news.Article) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM summaries; DELETE FROM articles;`); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO articles (id, title, date, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range articles {
		if _, err := stmt.Exec(a.ID, a.Title, a.Date.String(), a.Body); err != nil {
			return fmt.Errorf("inserting article %d: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// All returns the collection in load order. Summarized articles come back
// with an empty body.
func (c *Cache) All() ([]news.Article, error) {
	rows, err := c.db.Query(`SELECT id, title, date, COALESCE(body, '') FROM articles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		var (
			a    news.Article
			date string
		)
		if err := rows.Scan(&a.ID, &a.Title, &date, &a.Body); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		if a.Date, err = news.ParseDate(date); err != nil {
			return nil, fmt.Errorf("article %d: %w", a.ID, err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Attach stores both summaries for an article and drops its body. The
// change is one-way for the rest of the session.
func (c *Cache) Attach(r Record) error {
	if c == nil || c.db == nil {
		return ErrClosed
	}
	graph, err := json.Marshal(nonNil(r.GraphRank))
	if err != nil {
		return err
	}
	keyword, err := json.Marshal(nonNil(r.KeywordDensity))
	if err != nil {
		return err
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE articles SET body = NULL WHERE id = ?`, r.ArticleID)
	if err != nil {
		return fmt.Errorf("clearing body of article %d: %w", r.ArticleID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, r.ArticleID)
	}

	_, err = tx.Exec(`
		INSERT INTO summaries (article_id, graph, keyword, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(article_id) DO UPDATE SET
			graph = excluded.graph,
			keyword = excluded.keyword,
			created_at = excluded.created_at
	`, r.ArticleID, string(graph), string(keyword), r.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving summaries of article %d: %w", r.ArticleID, err)
	}

	return tx.Commit()
}

// Summary returns the record attached to an article.
func (c *Cache) Summary(articleID int) (Record, error) {
	var (
		r              Record
		graph, keyword string
	)
	err := c.db.QueryRow(
		`SELECT article_id, graph, keyword, created_at FROM summaries WHERE article_id = ?`, articleID,
	).Scan(&r.ArticleID, &graph, &keyword, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %d", ErrNotFound, articleID)
	}
	if err != nil {
		return Record{}, fmt.Errorf("reading summaries: %w", err)
	}
	if err := json.Unmarshal([]byte(graph), &r.GraphRank); err != nil {
		return Record{}, fmt.Errorf("decoding graph summary: %w", err)
	}
	if err := json.Unmarshal([]byte(keyword), &r.KeywordDensity); err != nil {
		return Record{}, fmt.Errorf("decoding keyword summary: %w", err)
	}
	return r, nil
}

func (c *Cache) Stats() (Stats, error) {
	var s Stats
	err := c.db.QueryRow(`
		SELECT (SELECT COUNT(*) FROM articles), (SELECT COUNT(*) FROM summaries)
	`).Scan(&s.Articles, &s.Summarized)
	if err != nil {
		return Stats{}, fmt.Errorf("reading stats: %w", err)
	}
	return s, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
