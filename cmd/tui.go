package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yyyklk/news-app/internal/filter"
	"github.com/yyyklk/news-app/internal/news"
	"github.com/yyyklk/news-app/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal browser (default)",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if n := len(filter.CleanKeywords(flagKeywords)); n > tui.MaxKeywordFields {
		return fmt.Errorf("too many keywords: %d (the browser holds at most %d)", n, tui.MaxKeywordFields)
	}

	s, err := openSession(logToFile)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.summarizers()
	if err != nil {
		return err
	}

	opts := tui.RunOpts{
		Articles:     s.articles,
		Digest:       d,
		DefaultStart: s.cfg.StartDate(),
		Earliest:     s.cfg.Earliest(),
		Today:        news.Today(),
		From:         flagFrom,
		To:           flagTo,
		Keywords:     filter.CleanKeywords(flagKeywords),
		Log:          s.log,
	}
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
