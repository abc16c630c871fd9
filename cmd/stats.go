package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yyyklk/news-app/internal/news"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the loaded news collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(logToFile)
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := s.store.Stats()
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		path := filepath.Join(s.cfg.DataDir, s.cfg.DataFile)
		var size int64
		if fi, err := os.Stat(path); err == nil {
			size = fi.Size()
		}
		first, last := dateSpan(s.articles)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Data: %s\n", path)
		fmt.Fprintf(out, "Size: %s\n", formatBytes(size))
		fmt.Fprintf(out, "Articles: %d\n", st.Articles)
		if st.Articles > 0 {
			fmt.Fprintf(out, "Dates: %s to %s\n", first, last)
		}
		return nil
	},
}

// dateSpan returns the earliest and latest article dates.
func dateSpan(articles []news.Article) (news.Date, news.Date) {
	var first, last news.Date
	for i, a := range articles {
		if i == 0 || a.Date.Before(first) {
			first = a.Date
		}
		if i == 0 || a.Date.After(last) {
			last = a.Date
		}
	}
	return first, last
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
