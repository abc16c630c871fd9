package web

import (
	"strconv"
)

const maxKeywordFields = 20

// form is the page state carried in the query string. The number of
// keyword fields lives here rather than on the server.
type form struct {
	From     string
	To       string
	Keywords []string
	Fields   int
	Action   string
}

func (f *form) apply(action string) {
	switch action {
	case "add":
		if f.Fields < maxKeywordFields {
			f.Fields++
		}
	case "remove":
		if f.Fields > 0 {
			f.Fields--
		}
	}
	for len(f.Keywords) < f.Fields {
		f.Keywords = append(f.Keywords, "")
	}
	f.Keywords = f.Keywords[:f.Fields]
}

func parseFields(raw string, keywords int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return keywords
	}
	if n > maxKeywordFields {
		return maxKeywordFields
	}
	return n
}
