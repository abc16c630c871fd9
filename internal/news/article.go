// Package news holds the article model and loads the article collection.
package news

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrDataDirMissing  = errors.New("data directory not found")
	ErrDataFileMissing = errors.New("news file not found")
)

// Article is one news item as loaded. ID is its position in the source file.
type Article struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Date  Date   `json:"date"`
	Body  string `json:"content"`
}

// rawArticle accepts both the English keys and the original Chinese ones.
type rawArticle struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`

	ZhDate    string `json:"日期"`
	ZhTitle   string `json:"標題"`
	ZhContent string `json:"內容"`
}

func (r rawArticle) pick() (date, title, content string) {
	date, title, content = r.Date, r.Title, r.Content
	if date == "" {
		date = r.ZhDate
	}
	if title == "" {
		title = r.ZhTitle
	}
	if content == "" {
		content = r.ZhContent
	}
	return date, title, content
}

// Load reads dir/file. A missing directory or file is reported with
// ErrDataDirMissing or ErrDataFileMissing; any malformed date fails the load.
func Load(dir, file string) ([]Article, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDataDirMissing, dir)
	}

	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDataFileMissing, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	articles, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return articles, nil
}

// Parse decodes a JSON array of articles.
func Parse(data []byte) ([]Article, error) {
	var raws []rawArticle
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(raws))
	for i, r := range raws {
		date, title, content := r.pick()
		d, err := ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("article %d (%q): %w", i, title, err)
		}
		articles = append(articles, Article{ID: i, Title: title, Date: d, Body: content})
	}
	return articles, nil
}
