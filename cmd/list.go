package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yyyklk/news-app/internal/filter"
	"github.com/yyyklk/news-app/internal/news"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the articles matching the date range and keywords",
	Example: `  newsapp list --from 2025-06-28 --to 2025-06-30
  newsapp list -k 台北 -k 颱風`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(logToFile)
		if err != nil {
			return err
		}
		defer s.Close()

		q, err := s.query(news.Today())
		if err != nil {
			return err
		}
		results := filter.Apply(s.articles, q)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, keywordInfo(q.Keywords))
		fmt.Fprintln(out, color.New(color.Bold).Sprintf("%d matching articles", len(results)))
		if len(results) == 0 {
			fmt.Fprintln(out, "No matching articles")
			return nil
		}
		dim := color.New(color.Faint)
		for _, a := range results {
			fmt.Fprintf(out, "%s  %s\n", dim.Sprint(a.Date), a.Title)
		}
		return nil
	},
}

// keywordInfo describes the active keywords the same way the browsers do.
func keywordInfo(keywords []string) string {
	if len(keywords) == 0 {
		return "No keywords: showing all articles"
	}
	return "Keywords: " + strings.Join(keywords, ", ")
}
