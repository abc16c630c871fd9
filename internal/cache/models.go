package cache

import "time"

// Record holds the summaries attached to an article during the session.
type Record struct {
	ArticleID      int
	GraphRank      []string
	KeywordDensity []string
	CreatedAt      time.Time
}

type Stats struct {
	Articles   int
	Summarized int
}
