package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yyyklk/news-app/internal/digest"
	"github.com/yyyklk/news-app/internal/filter"
	"github.com/yyyklk/news-app/internal/news"
)

var flagJSON bool

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize every matching article with both methods",
	Example: `  newsapp summarize -k 颱風 --sentences 2
  newsapp summarize --from 2025-06-28 --json`,
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
		if len(results) == 0 {
			if flagJSON {
				fmt.Fprintln(out, "[]")
				return nil
			}
			fmt.Fprintln(out, "No matching articles to summarize")
			return nil
		}

		d, err := s.summarizers()
		if err != nil {
			return err
		}

		errOut := cmd.ErrOrStderr()
		entries := d.Run(results, func(done, total int, a news.Article) {
			fmt.Fprintf(errOut, "\rSummarizing %d/%d", done, total)
			if done == total {
				fmt.Fprintln(errOut)
			}
		})

		if flagJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(entries)
		}
		printEntries(out, entries)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().BoolVar(&flagJSON, "json", false, "print entries as JSON")
}

func printEntries(w io.Writer, entries []digest.Entry) {
	title := color.New(color.Bold, color.FgCyan)
	heading := color.New(color.FgMagenta, color.Bold)
	dim := color.New(color.Faint)

	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", title.Sprintf("%d. %s", e.Index, e.Title), dim.Sprint(e.Date))
		fmt.Fprintln(w, heading.Sprint("  Graph-rank summary"))
		printNumbered(w, e.GraphRank)
		fmt.Fprintln(w, heading.Sprint("  Keyword summary"))
		printNumbered(w, e.KeywordDensity)
	}
}

func printNumbered(w io.Writer, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "    (no sentences)")
		return
	}
	for i, s := range items {
		fmt.Fprintf(w, "    %d. %s\n", i+1, s)
	}
}
