package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig    string
	flagDataDir   string
	flagFrom      string
	flagTo        string
	flagKeywords  []string
	flagSentences int
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "newsapp",
	Short: "Browse and summarize a local news collection",
	Long: `newsapp filters a local collection of Chinese-language news articles by date range
and keywords, and produces two extractive summaries for each match: a graph-ranked one
and a keyword-density one.

Run without a subcommand to open the terminal browser.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to config file")
	pf.StringVar(&flagDataDir, "data-dir", "", "directory holding the news data file")
	pf.StringVar(&flagFrom, "from", "", "start date (YYYY-MM-DD), inclusive")
	pf.StringVar(&flagTo, "to", "", "end date (YYYY-MM-DD), inclusive; defaults to today")
	pf.StringArrayVarP(&flagKeywords, "keyword", "k", nil, "keyword every article must contain (repeatable)")
	pf.IntVar(&flagSentences, "sentences", 0, "sentences per summary (default from config)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsapp %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
