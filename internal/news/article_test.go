package news

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeNews(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "combined_news.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing news file: %v", err)
	}
	return dir
}

func TestLoadEnglishKeys(t *testing.T) {
	dir := writeNews(t, `[
		{"date": "2025-06-28", "title": "A", "content": "甲。乙。丙。"},
		{"date": "2025-07-01", "title": "B", "content": "丁。"}
	]`)

	articles, err := Load(dir, "combined_news.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "A" || articles[0].Body != "甲。乙。丙。" {
		t.Errorf("unexpected first article: %+v", articles[0])
	}
	if articles[1].ID != 1 {
		t.Errorf("expected ID 1, got %d", articles[1].ID)
	}
	if got := articles[0].Date.String(); got != "2025-06-28" {
		t.Errorf("expected date 2025-06-28, got %s", got)
	}
}

func TestLoadChineseKeys(t *testing.T) {
	dir := writeNews(t, `[{"日期": "2025-06-29", "標題": "颱風", "內容": "臺北停班。"}]`)

	articles, err := Load(dir, "combined_news.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if articles[0].Title != "颱風" || articles[0].Body != "臺北停班。" {
		t.Errorf("unexpected article: %+v", articles[0])
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), "combined_news.json")
	if !errors.Is(err, ErrDataDirMissing) {
		t.Errorf("expected ErrDataDirMissing, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "combined_news.json")
	if !errors.Is(err, ErrDataFileMissing) {
		t.Errorf("expected ErrDataFileMissing, got %v", err)
	}
}

func TestLoadMalformedDate(t *testing.T) {
	dir := writeNews(t, `[
		{"date": "2025-06-28", "title": "ok", "content": ""},
		{"date": "28/06/2025", "title": "bad", "content": ""}
	]`)

	_, err := Load(dir, "combined_news.json")
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if !strings.Contains(err.Error(), "article 1") {
		t.Errorf("expected error to name article 1, got %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := writeNews(t, `{not json`)
	if _, err := Load(dir, "combined_news.json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustDate("2025-06-28")
	b := MustDate("2025-06-29")
	if !a.Before(b) || !b.After(a) {
		t.Error("expected 2025-06-28 before 2025-06-29")
	}
	if !a.Equal(MustDate("2025-06-28")) {
		t.Error("expected equal dates")
	}
}

func TestDateOfDropsClock(t *testing.T) {
	d := DateOf(time.Date(2025, 6, 28, 23, 59, 0, 0, time.Local))
	if !d.Equal(MustDate("2025-06-28")) {
		t.Errorf("DateOf = %s, want 2025-06-28", d)
	}
}

func TestDateText(t *testing.T) {
	var d Date
	if err := d.UnmarshalText([]byte("2025-12-31")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, _ := d.MarshalText()
	if string(b) != "2025-12-31" {
		t.Errorf("MarshalText = %s", b)
	}
	if err := d.UnmarshalText([]byte("2025-13-01")); err == nil {
		t.Error("expected error for month 13")
	}
}
