package filter

import (
	"fmt"

	"github.com/yyyklk/news-app/internal/news"
)

// ParseRange resolves user-entered dates. Empty values fall back to def;
// dates before earliest are rejected. An inverted range is returned as is.
func ParseRange(from, to string, def DateRange, earliest news.Date) (DateRange, error) {
	r := def
	if from != "" {
		d, err := news.ParseDate(from)
		if err != nil {
			return r, fmt.Errorf("start date: %w", err)
		}
		r.Start = d
	}
	if to != "" {
		d, err := news.ParseDate(to)
		if err != nil {
			return r, fmt.Errorf("end date: %w", err)
		}
		r.End = d
	}
	if !earliest.IsZero() {
		if r.Start.Before(earliest) {
			return r, fmt.Errorf("start date %s is before %s", r.Start, earliest)
		}
		if r.End.Before(earliest) {
			return r, fmt.Errorf("end date %s is before %s", r.End, earliest)
		}
	}
	return r, nil
}
